package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dfryer1193/fotostore/images/domain"
	"github.com/gin-gonic/gin"
)

const uploadField = "file"

// ErrMissingFile is returned when a request carries no "file" form part
var ErrMissingFile = errors.New("no file uploaded")

// readUpload buffers the single "file" part of a multipart request in memory
func readUpload(c *gin.Context) (*domain.File, error) {
	header, err := c.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, ErrMissingFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse upload: %w", err)
	}

	part, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return &domain.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
