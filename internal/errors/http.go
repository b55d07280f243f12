package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a service/store error onto the response status. Ownership
// mismatches surface as 404 like plain absence, and anything outside the
// taxonomy is a generic 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmailAlreadyInUse),
		errors.Is(err, ErrInvalidResetToken),
		errors.Is(err, ErrInvalidTaskText),
		errors.Is(err, ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidSession):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTaskNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HTTPMessage keeps internal failure detail out of responses.
func HTTPMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}

	return err.Error()
}
