package apperrors

import (
	"errors"
	"net/http"
)

// User-facing failures carry their message directly; the API returns it
// verbatim in the error envelope.
var (
	// ErrMissingCredentials is returned when login fields are empty.
	ErrMissingCredentials = errors.New("Введите логин и пароль")
	// ErrBadCredentials is returned for an unknown user or a wrong password.
	// A single message for both, so login responses don't reveal which.
	ErrBadCredentials = errors.New("Неверный логин или пароль")
	// ErrAuthRequired is returned when a protected route has no valid session.
	ErrAuthRequired = errors.New("Нужна авторизация")
	// ErrNoFiles is returned when an upload request carries no files.
	ErrNoFiles = errors.New("Файлы не переданы")
	// ErrNotAnImage is returned when a file's declared type is not image/*.
	ErrNotAnImage = errors.New("Можно загружать только изображения")
	// ErrTooManyFiles is returned when a batch exceeds the per-request cap.
	ErrTooManyFiles = errors.New("Слишком много файлов")
	// ErrFileTooLarge is returned when a single file exceeds the size cap.
	ErrFileTooLarge = errors.New("Файл слишком большой")
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError pairs a failure with its status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors are
// treated as store failures and hidden behind a generic message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrNoFiles),
		errors.Is(err, ErrNotAnImage),
		errors.Is(err, ErrTooManyFiles),
		errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrBadCredentials), errors.Is(err, ErrAuthRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Ошибка сервера")
	}
}
