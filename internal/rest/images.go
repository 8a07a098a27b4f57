package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dfryer1193/fotostore/api"
	"github.com/dfryer1193/fotostore/images/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const fallbackContentType = "application/octet-stream"

// ImageService is the application surface the handlers drive
type ImageService interface {
	Upload(ctx context.Context, f *domain.File) (string, error)
	Get(ctx context.Context, filename string) (*domain.File, error)
	Delete(ctx context.Context, filename string) error
	Update(ctx context.Context, filename string, f *domain.File) error
}

type ImageHandler struct {
	service ImageService
}

func NewImageHandler(service ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	f, ok := h.bindUpload(c)
	if !ok {
		return
	}

	if _, err := h.service.Upload(c.Request.Context(), f); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: api.MsgUploaded})
}

func (h *ImageHandler) GetImage(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("filename"))
	if err != nil {
		h.fail(c, err)
		return
	}

	contentType := f.ContentType
	if contentType == "" {
		contentType = fallbackContentType
	}
	c.Data(http.StatusOK, contentType, f.Content)
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("filename")); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: api.MsgDeleted})
}

func (h *ImageHandler) UpdateImage(c *gin.Context) {
	f, ok := h.bindUpload(c)
	if !ok {
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("filename"), f); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: api.MsgUpdated})
}

func (h *ImageHandler) bindUpload(c *gin.Context) (*domain.File, bool) {
	f, err := readUpload(c)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return f, true
}

// fail translates an error into the response for it.
// Anything outside the known taxonomy is a 500 carrying the error text.
func (h *ImageHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFile):
		c.String(http.StatusBadRequest, api.MsgNoFile)
	case errors.Is(err, domain.ErrImageNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Err: api.MsgFileMissing})
	default:
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("image request failed")
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, err.Error())
	}
}
