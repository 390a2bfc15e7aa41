package interfaces

import (
	"context"

	"packtrack/internal/domain/entities"
)

// IBillRecordStore abstracts DynamoDB persistence for Bill records.
//
// Not-found is reported as a zero-value Bill, not an error, matching how the
// repositories behave against DynamoDB conditional reads.
type IBillRecordStore interface {
	Put(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]entities.Bill, error)
}
