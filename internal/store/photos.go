package store

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"album-backend/internal/apperrors"
	"album-backend/internal/models"
)

// UploadFile is one file from a multipart upload batch.
type UploadFile struct {
	Filename string
	MimeType string
	Data     []byte
}

// Photos persists uploaded images per user.
type Photos interface {
	// ListByUser returns the user's photos, most recent first.
	ListByUser(ctx context.Context, userID int) ([]models.Photo, error)
	// InsertAll persists the whole batch in one transaction, or nothing.
	InsertAll(ctx context.Context, userID int, files []UploadFile) (int, error)
	DeleteAllForUser(ctx context.Context, userID int) error
}

type PhotoStore struct {
	pool *pgxpool.Pool
}

var _ Photos = (*PhotoStore)(nil)

func NewPhotoStore(pool *pgxpool.Pool) *PhotoStore {
	return &PhotoStore{pool: pool}
}

func (s *PhotoStore) ListByUser(ctx context.Context, userID int) ([]models.Photo, error) {
	// The id tie-break keeps order stable when a batch shares one timestamp.
	query := `
		SELECT id, user_id, filename, mime_type, image_data, created_at
		FROM photos
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.Filename, &p.MimeType, &p.Src, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *PhotoStore) InsertAll(ctx context.Context, userID int, files []UploadFile) (int, error) {
	if len(files) == 0 {
		return 0, apperrors.ErrNoFiles
	}
	if err := ValidateBatch(files); err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	for _, f := range files {
		_, err = tx.Exec(ctx,
			`INSERT INTO photos (user_id, filename, mime_type, image_data) VALUES ($1, $2, $3, $4)`,
			userID, f.Filename, f.MimeType, encodeDataURL(f.MimeType, f.Data))
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return len(files), nil
}

func (s *PhotoStore) DeleteAllForUser(ctx context.Context, userID int) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM photos WHERE user_id = $1`, userID)
	return err
}

// ValidateBatch rejects any batch containing a file whose declared type is
// not an image type. Runs before the first insert, so a bad file means the
// store is never touched.
func ValidateBatch(files []UploadFile) error {
	for _, f := range files {
		if !strings.HasPrefix(f.MimeType, "image/") {
			return apperrors.ErrNotAnImage
		}
	}
	return nil
}

func encodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
