package httpx

import (
	"errors"
	"net/http"

	"github.com/concord-mediation/concord/internal/shared"
)

// RespondError maps domain errors to failure envelopes. Unknown errors become
// a generic 500 so persistence or crypto detail never reaches the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Fail(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, shared.ErrConflict):
		Fail(w, http.StatusBadRequest, "name or email already exists")
	case errors.Is(err, shared.ErrValidation):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, shared.ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "unauthorized")
	default:
		Fail(w, http.StatusInternalServerError, "internal server error")
	}
}
