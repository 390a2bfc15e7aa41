package interfaces

import (
	"context"

	"packtrack/internal/domain/entities"
)

// IFieldExtractor abstracts the AI vision call that turns a bill photograph
// into candidate record fields. Any field may be empty; a failure aborts the
// creation attempt before anything is written.
type IFieldExtractor interface {
	Extract(ctx context.Context, image []byte) (entities.ExtractedFields, error)
}

// IImageCompressor shrinks a captured photo before upload. Best-effort: on
// any internal failure implementations return the original bytes unchanged.
type IImageCompressor interface {
	Compress(image []byte) []byte
}
