package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"album-backend/internal/apperrors"
)

func TestValidateBatch(t *testing.T) {
	tests := []struct {
		name  string
		files []UploadFile
		err   error
	}{
		{
			name: "all images",
			files: []UploadFile{
				{Filename: "a.jpg", MimeType: "image/jpeg"},
				{Filename: "b.png", MimeType: "image/png"},
			},
		},
		{
			name: "one non-image poisons the batch",
			files: []UploadFile{
				{Filename: "a.jpg", MimeType: "image/jpeg"},
				{Filename: "evil.pdf", MimeType: "application/pdf"},
			},
			err: apperrors.ErrNotAnImage,
		},
		{
			name:  "missing declared type",
			files: []UploadFile{{Filename: "a.jpg", MimeType: ""}},
			err:   apperrors.ErrNotAnImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.files)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// A bad batch must fail before the store is touched; a nil pool proves it.
func TestInsertAllRejectsWithoutTouchingPool(t *testing.T) {
	s := NewPhotoStore(nil)
	ctx := context.Background()

	n, err := s.InsertAll(ctx, 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoFiles)
	assert.Zero(t, n)

	n, err = s.InsertAll(ctx, 1, []UploadFile{
		{Filename: "a.jpg", MimeType: "image/jpeg", Data: []byte("x")},
		{Filename: "b.txt", MimeType: "text/plain", Data: []byte("y")},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotAnImage)
	assert.Zero(t, n)
}

func TestEncodeDataURL(t *testing.T) {
	got := encodeDataURL("image/png", []byte("hello"))
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", got)
}
