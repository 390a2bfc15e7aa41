package interfaces

import "context"

// IImageStore abstracts the object store holding bill photographs.
//
// Upload returns the public URL of the stored object. Delete accepts that
// same URL back; deleting an URL the store does not own is an error.
type IImageStore interface {
	Upload(ctx context.Context, billID string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
	// Owns reports whether the given URL points into this store. Local
	// data: placeholders and foreign URLs are never deleted remotely.
	Owns(url string) bool
}
