package domain

import (
	"context"
	"errors"
)

// ErrImageNotFound is returned by an ImageRepository when no record matches a filename
var ErrImageNotFound = errors.New("image not found")

// Image represents a stored image record.
// The payload is kept base64-encoded, exactly as it is persisted.
type Image struct {
	ID          string
	Filename    string
	ContentType string
	ImageBase64 string
}

// File is a raw image as it arrives from, or is returned to, a client
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// ImageRepository is the document store holding image records.
// Filenames are not unique; lookups operate on the first matching record.
type ImageRepository interface {
	// InsertImage stores a new record and returns its store-assigned ID
	InsertImage(ctx context.Context, img *Image) (string, error)

	// FindImage returns the first record matching filename
	FindImage(ctx context.Context, filename string) (*Image, error)

	// DeleteImage removes the first record matching filename and returns it
	DeleteImage(ctx context.Context, filename string) (*Image, error)

	// ReplaceImage overwrites every field of the first record matching filename
	// and returns the updated record
	ReplaceImage(ctx context.Context, filename string, img *Image) (*Image, error)
}
