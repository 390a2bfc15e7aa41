package interfaces

import (
	"context"
	"errors"

	"packtrack/internal/domain/entities"
)

var (
	// ErrNotConfigured signals that no remote backend connection was
	// established. Offline mode is a valid steady state, not a failure:
	// callers keep bills local and never retry.
	ErrNotConfigured = errors.New("remote gateway not configured")

	// ErrUploadFailed wraps image upload failures during Persist.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrPersistFailed wraps record upsert failures during Persist.
	ErrPersistFailed = errors.New("record persist failed")
)

// IRemoteGateway is the injected remote persistence boundary consumed by the
// bill usecases. Implementations compose a record store and an image object
// store; a nil gateway means offline mode.
//
// Persist contract:
//   - If imagePayload is non-empty, the image is uploaded first and the
//     returned bill carries the resulting ImageURL.
//   - A prior image at a different location is removed after the new upload
//     succeeds (best-effort, logged only).
//   - If the record upsert fails after a successful upload, the uploaded
//     image is removed again so no orphaned object is left behind.
type IRemoteGateway interface {
	Persist(ctx context.Context, bill entities.Bill, imagePayload []byte) (entities.Bill, error)
	// Remove deletes the record and, best-effort, its stored image. Image
	// deletion failures are observability-only and never returned.
	Remove(ctx context.Context, id string) error
	// Subscribe delivers the full current record set immediately and again
	// whenever the remote set changes. The caller owns cancellation.
	Subscribe(ctx context.Context) (ISubscription, error)
}

// ISubscription is a cancellable stream of full remote snapshots.
type ISubscription interface {
	Updates() <-chan []entities.Bill
	Close()
}
