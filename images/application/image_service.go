package application

import (
	"context"
	"fmt"

	"github.com/dfryer1193/fotostore/images/domain"
	"github.com/rs/zerolog/log"
)

type ImageService struct {
	repo domain.ImageRepository
}

func NewImageService(repo domain.ImageRepository) *ImageService {
	return &ImageService{
		repo: repo,
	}
}

// Upload encodes f and stores it as a new record, returning the record ID
func (s *ImageService) Upload(ctx context.Context, f *domain.File) (string, error) {
	if f == nil {
		return "", fmt.Errorf("file cannot be nil")
	}

	id, err := s.repo.InsertImage(ctx, domain.NewImage(f))
	if err != nil {
		return "", fmt.Errorf("failed to store image %s: %w", f.Name, err)
	}

	log.Ctx(ctx).Info().
		Str("image_id", id).
		Str("filename", f.Name).
		Str("content_type", f.ContentType).
		Int("bytes", len(f.Content)).
		Msg("image stored")
	return id, nil
}

// Get returns the decoded file of the first record named filename
func (s *ImageService) Get(ctx context.Context, filename string) (*domain.File, error) {
	img, err := s.repo.FindImage(ctx, filename)
	if err != nil {
		return nil, err
	}

	f, err := img.File()
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", img.ID, err)
	}
	return f, nil
}

// Delete removes the first record named filename
func (s *ImageService) Delete(ctx context.Context, filename string) error {
	img, err := s.repo.DeleteImage(ctx, filename)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Str("image_id", img.ID).
		Str("filename", filename).
		Msg("image deleted")
	return nil
}

// Update replaces every field of the first record named filename with f.
// The record takes f's name, which may differ from filename.
func (s *ImageService) Update(ctx context.Context, filename string, f *domain.File) error {
	if f == nil {
		return fmt.Errorf("file cannot be nil")
	}

	img, err := s.repo.ReplaceImage(ctx, filename, domain.NewImage(f))
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Str("image_id", img.ID).
		Str("filename", filename).
		Str("new_filename", img.Filename).
		Int("bytes", len(f.Content)).
		Msg("image updated")
	return nil
}
