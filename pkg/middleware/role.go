package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
)

// RoleMiddleware restricts a route to the given roles. Fine-grained scope
// checks (own area, own rows) still happen in the use-cases; this gate only
// keeps obviously wrong roles out of an endpoint.
func RoleMiddleware(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
				return
			}

			for _, role := range allowedRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warnf("access denied for employee=%s role=%s", claims.EmployeeID, claims.Role)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Your role does not permit this operation", nil)
		})
	}
}

// AgentOnly permits only field agents.
func AgentOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAgent)
}

// ExecutiveOnly permits only area executives.
func ExecutiveOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleExecutive)
}

// ManagementOnly permits only head-office management.
func ManagementOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleManagement)
}

// SupervisorsOnly permits everyone above the agent level.
func SupervisorsOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleExecutive, domain.RoleZM, domain.RoleAGM, domain.RoleManagement)
}

// AllRoles permits any authenticated employee.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAgent, domain.RoleExecutive, domain.RoleZM, domain.RoleAGM, domain.RoleManagement)
}
