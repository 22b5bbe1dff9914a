package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authenticating"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/log"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// identityFromRequest rebuilds the explicit caller identity from the token
// claims the auth middleware stored. Everything below the handlers receives
// the identity as a parameter, never from ambient state.
func identityFromRequest(r *http.Request) (domain.Identity, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return domain.Identity{}, false
	}
	return claims.Identity(), true
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}

// writeDomainError maps the shared error kinds onto the API error codes so
// every operation rejects uniformly: 403 for scope/ownership, 400 for
// hierarchy and input, 404/409 for missing rows and conflicts.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		logger.Warn("request without a resolved identity")
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
	case errors.Is(err, domain.ErrForbidden):
		logger.Warn("scope or ownership check failed")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidHierarchy):
		logger.Warn("hierarchy validation failed")
		apiErrors.WriteError(w, apiErrors.ErrInvalidHierarchy, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidRole):
		logger.Warn("unknown role")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRole, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Warn("payload validation failed")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrConflict):
		logger.Error("unexpected uniqueness conflict")
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)
	case authenticating.IsCredentialsError(err):
		logger.Warn("credential check failed")
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Invalid credentials", nil)
	default:
		logger.Error("operation failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Operation failed", nil)
	}
}
