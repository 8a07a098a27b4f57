package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dfryer1193/fotostore/images/domain"
	"github.com/dfryer1193/fotostore/shared/db"
	"github.com/google/uuid"
)

var _ domain.ImageRepository = (*SQLiteImageRepository)(nil)

// SQLiteImageRepository implements domain.ImageRepository using SQL database (SQLite)
type SQLiteImageRepository struct {
	db *sql.DB
}

// NewSQLiteImageRepository creates a new SQLiteImageRepository from a standard sql.DB
func NewSQLiteImageRepository(sqlDB *sql.DB) *SQLiteImageRepository {
	return &SQLiteImageRepository{
		db: sqlDB,
	}
}

const insertImageQuery = `
	INSERT INTO images (id, filename, content_type, image_base64, created_at)
	VALUES (?, ?, ?, ?, ?)
`

// InsertImage stores a new image record under a fresh UUID
func (r *SQLiteImageRepository) InsertImage(ctx context.Context, img *domain.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertImageQuery,
		id,
		img.Filename,
		img.ContentType,
		img.ImageBase64,
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert image record: %w", err)
	}

	img.ID = id
	return id, nil
}

// rowid order makes "first match" the earliest inserted record
const findImageQuery = `
	SELECT id, filename, content_type, image_base64
	FROM images
	WHERE filename = ?
	ORDER BY rowid
	LIMIT 1
`

// FindImage retrieves the first image record with the given filename
func (r *SQLiteImageRepository) FindImage(ctx context.Context, filename string) (*domain.Image, error) {
	return r.findImage(ctx, db.GetExecutor(ctx, r.db), filename)
}

const deleteImageQuery = `
	DELETE FROM images WHERE id = ?
`

// DeleteImage removes the first image record with the given filename and returns it
func (r *SQLiteImageRepository) DeleteImage(ctx context.Context, filename string) (*domain.Image, error) {
	var deleted *domain.Image

	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		img, err := r.findImage(txCtx, executor, filename)
		if err != nil {
			return err
		}

		if _, err := executor.ExecContext(txCtx, deleteImageQuery, img.ID); err != nil {
			return fmt.Errorf("failed to delete image record: %w", err)
		}

		deleted = img
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

const replaceImageQuery = `
	UPDATE images SET
		filename = ?,
		content_type = ?,
		image_base64 = ?,
		updated_at = ?
	WHERE id = ?
`

// ReplaceImage overwrites the first image record with the given filename
func (r *SQLiteImageRepository) ReplaceImage(ctx context.Context, filename string, img *domain.Image) (*domain.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	var updated *domain.Image

	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		existing, err := r.findImage(txCtx, executor, filename)
		if err != nil {
			return err
		}

		_, err = executor.ExecContext(txCtx, replaceImageQuery,
			img.Filename,
			img.ContentType,
			img.ImageBase64,
			time.Now().UTC(),
			existing.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update image record: %w", err)
		}

		updated = &domain.Image{
			ID:          existing.ID,
			Filename:    img.Filename,
			ContentType: img.ContentType,
			ImageBase64: img.ImageBase64,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *SQLiteImageRepository) findImage(ctx context.Context, executor db.Executor, filename string) (*domain.Image, error) {
	var row imageRow
	err := executor.QueryRowContext(ctx, findImageQuery, filename).Scan(
		&row.ID,
		&row.Filename,
		&row.ContentType,
		&row.ImageBase64,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrImageNotFound, filename)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return row.toDomain(), nil
}

// imageRow is a private struct used to scan database rows
type imageRow struct {
	ID          string `db:"id"`
	Filename    string `db:"filename"`
	ContentType string `db:"content_type"`
	ImageBase64 string `db:"image_base64"`
}

func (ir *imageRow) toDomain() *domain.Image {
	return &domain.Image{
		ID:          ir.ID,
		Filename:    ir.Filename,
		ContentType: ir.ContentType,
		ImageBase64: ir.ImageBase64,
	}
}
