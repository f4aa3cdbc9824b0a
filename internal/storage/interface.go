package storage

import (
	"context"
	"io"
)

// BlobStore is the interface for receipt image storage backends. The system
// only needs a durable URL back; it never inspects the uploaded file.
type BlobStore interface {
	// Save stores the file under key and returns a durable download URL.
	Save(ctx context.Context, key string, contentType string, reader io.Reader) (string, error)

	// Open opens a stored file for reading.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if a file exists and returns its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes a file from storage.
	Delete(ctx context.Context, key string) error
}
