package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrMalformedEncoding is returned when a stored payload is not valid base64
var ErrMalformedEncoding = errors.New("malformed image encoding")

// EncodeContent converts raw image bytes into their stored textual form
func EncodeContent(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}

// DecodeContent converts a stored payload back into raw bytes
func DecodeContent(encoded string) ([]byte, error) {
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return content, nil
}

// NewImage builds the record stored for an uploaded file
func NewImage(f *File) *Image {
	return &Image{
		Filename:    f.Name,
		ContentType: f.ContentType,
		ImageBase64: EncodeContent(f.Content),
	}
}

// File decodes the record back into the file that was uploaded
func (img *Image) File() (*File, error) {
	content, err := DecodeContent(img.ImageBase64)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        img.Filename,
		ContentType: img.ContentType,
		Content:     content,
	}, nil
}
