package http

import (
	"errors"
	"net/http"

	"github.com/ndanilchenko/go-skill-market/internal/service"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/internal/utils"
	"github.com/ndanilchenko/go-skill-market/models"
)

// writeError emits the uniform JSON error body with the given stable kind.
// Every non-2xx response of the API goes through here so that clients can
// always branch on the "kind" field.
func writeError(w http.ResponseWriter, kind, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Kind: kind, Message: message}, statusCode)
}

// writeServiceError translates a service- or store-layer sentinel into its
// HTTP representation.
//
// The mapping keeps the error taxonomy distinctions intact: a missing
// resource is 404 not_found, a failed auth gate is 401 unauthorized, and a
// denied ownership check is 403 forbidden — they are never collapsed into
// one status.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		writeError(w, models.KindValidationError, "invalid data provided", http.StatusBadRequest)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		writeError(w, models.KindDuplicateEmail, "email already registered", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, models.KindInvalidCredentials, "invalid email/password", http.StatusUnauthorized)
	case errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrUnauthorized):
		writeError(w, models.KindUnauthorized, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, models.KindForbidden, "you can only modify your own tutorials", http.StatusForbidden)
	case errors.Is(err, store.ErrProductNotFound):
		writeError(w, models.KindNotFound, "product not found", http.StatusNotFound)
	case errors.Is(err, store.ErrTutorialNotFound):
		writeError(w, models.KindNotFound, "tutorial not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNoUserWasFound):
		writeError(w, models.KindNotFound, "user not found", http.StatusNotFound)
	default:
		writeError(w, models.KindInternalError, "internal server error", http.StatusInternalServerError)
	}
}
