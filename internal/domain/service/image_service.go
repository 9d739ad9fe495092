package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageStorageDisabled is returned when no image storage is configured.
var ErrImageStorageDisabled = errors.New("image storage not configured")

// ImageService abstracts hosted image storage for product photos.
type ImageService interface {
	// Enabled reports whether an image store is configured. When false,
	// callers keep the client-supplied image URL as-is.
	Enabled() bool

	// Upload stores the image and returns its public URL.
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)

	// Delete removes a previously uploaded image. Unknown or external URLs
	// are ignored.
	Delete(ctx context.Context, imageURL string) error
}
