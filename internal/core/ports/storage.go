package ports

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded resume files.
type ObjectStorage interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Fetch reads the full object back.
	Fetch(ctx context.Context, key string) ([]byte, error)
	// Delete removes the object. Deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error
	// KeyFromURL extracts the storage key from a URL previously returned by
	// Upload, or "" when the URL does not belong to this store.
	KeyFromURL(url string) string
}

// FeedbackEngine produces review feedback for a resume document.
type FeedbackEngine interface {
	// Review extracts the text of the PDF document and returns professional
	// feedback on it.
	Review(ctx context.Context, pdf []byte) (string, error)
}
