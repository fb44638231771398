package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable signals that the asset-storage backend is not configured or
// not reachable. Callers must treat it as "no change" for the field being
// uploaded; it is never surfaced to the end user.
var ErrUnavailable = errors.New("asset storage unavailable")

// Uploader turns an uploaded file stream into a durable, publicly fetchable
// URL. Availability is decided once at startup and exposed as a capability:
// a disabled uploader still satisfies the interface but fails every upload
// with ErrUnavailable.
type Uploader interface {
	// Upload stores the stream under a collision-resistant key derived from
	// folder, the current date and a random token plus the original file
	// extension, and returns the public URL.
	Upload(ctx context.Context, r io.Reader, size int64, fileName, contentType, folder string) (string, error)
	Available() bool
}

// Disabled is the uploader used when the storage backend is not configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, io.Reader, int64, string, string, string) (string, error) {
	return "", ErrUnavailable
}

func (Disabled) Available() bool { return false }
