package handler

import (
	"net/http"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authenticating"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/log"
)

type loginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not decode request body", nil)
			return
		}

		token, err := service.Login(req.EmployeeID, req.Password)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]string{"token": token})
	}
}

// GetMe returns the authenticated employee's profile.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeDomainError(w, r, domain.ErrUnauthenticated)
			return
		}

		user, err := service.GetProfile(identity.EmployeeID)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, user)
	}
}

// CreateUser provisions an employee account (management only, enforced by
// route middleware).
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not decode request body", nil)
			return
		}

		user, err := service.CreateUser(&req)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("employee_id", user.EmployeeID).Info("users: account provisioned")
		respondJSON(w, r, http.StatusCreated, user)
	}
}

// ListUsers returns every employee account (management only).
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, users)
	}
}
