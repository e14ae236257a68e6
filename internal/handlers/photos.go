package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"album-backend/internal/apperrors"
	"album-backend/internal/store"
)

const (
	// MaxUploadFiles caps one upload batch.
	MaxUploadFiles = 20
	// MaxFileSize caps a single uploaded file at 8 MiB.
	MaxFileSize = 8 << 20
)

// ListPhotosHandler returns the caller's photos, most recent first.
func ListPhotosHandler(photos store.Photos) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		list, err := photos.ListByUser(c.Context(), userID)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(list)
	}
}

// UploadPhotosHandler persists a multipart batch (field "photos") for the
// caller. The whole batch commits or none of it does.
func UploadPhotosHandler(photos store.Photos, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return jsonError(c, apperrors.ErrNoFiles)
		}

		headers := form.File["photos"]
		if len(headers) == 0 {
			return jsonError(c, apperrors.ErrNoFiles)
		}
		if len(headers) > MaxUploadFiles {
			return jsonError(c, apperrors.ErrTooManyFiles)
		}

		files := make([]store.UploadFile, 0, len(headers))
		for _, header := range headers {
			if header.Size > MaxFileSize {
				return jsonError(c, apperrors.ErrFileTooLarge)
			}

			data, err := readFile(header)
			if err != nil {
				return jsonError(c, err)
			}

			files = append(files, store.UploadFile{
				Filename: header.Filename,
				MimeType: header.Header.Get("Content-Type"),
				Data:     data,
			})
		}

		count, err := photos.InsertAll(c.Context(), c.Locals("user_id").(int), files)
		if err != nil {
			return uploadError(c, err)
		}

		log.WithField("uploaded", count).Info("photos uploaded")
		return c.JSON(fiber.Map{"ok": true, "uploaded": count})
	}
}

// ClearPhotosHandler deletes everything the caller has uploaded.
func ClearPhotosHandler(photos store.Photos) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		if err := photos.DeleteAllForUser(c.Context(), userID); err != nil {
			return jsonError(c, err)
		}

		return c.JSON(fiber.Map{"ok": true})
	}
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// uploadError keeps the original contract: any upload failure, store failures
// included, answers 400 with a message (the batch was rolled back either way).
func uploadError(c *fiber.Ctx, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		httpErr = apperrors.NewHTTPError(http.StatusBadRequest, "Ошибка загрузки")
	}
	return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
}
