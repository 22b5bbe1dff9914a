// Package authorizing is the single authorization decision point. Every
// scoped read in the system goes through Resolve; no handler or repository
// re-implements role checks.
package authorizing

import (
	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

// Resolver turns a caller identity plus an untrusted client filter into an
// authorized query scope, or an error when the filter reaches outside the
// caller's territory.
type Resolver interface {
	Resolve(identity domain.Identity, filter domain.SaleFilter) (domain.Scope, error)
}

type service struct{}

func NewService() Resolver {
	return service{}
}

// Resolve is a pure decision function: no I/O, errors returned rather than
// panicked, and nothing from the client filter passes through unvalidated.
func (service) Resolve(identity domain.Identity, filter domain.SaleFilter) (domain.Scope, error) {
	if err := identity.Validate(); err != nil {
		return domain.Scope{}, err
	}

	scope := domain.Scope{Date: filter.Date}

	switch identity.Role {
	case domain.RoleAgent:
		// Agents only ever see their own rows; hierarchy filters are
		// ignored rather than rejected.
		scope.AgentID = identity.EmployeeID

	case domain.RoleExecutive:
		if filter.Zone != nil && *filter.Zone != *identity.Zone {
			return domain.Scope{}, errors.Wrapf(domain.ErrForbidden,
				"executive of zone %d requested zone %d", *identity.Zone, *filter.Zone)
		}
		if filter.Area != nil && *filter.Area != *identity.Area {
			return domain.Scope{}, errors.Wrapf(domain.ErrForbidden,
				"executive of area %d requested area %d", *identity.Area, *filter.Area)
		}
		scope.Zone = identity.Zone
		scope.Area = identity.Area
		if filter.SubArea != nil {
			if !domain.IsValidSubArea(*filter.SubArea, identity.Area) {
				return domain.Scope{}, errors.Wrapf(domain.ErrInvalidHierarchy,
					"sub-area %d is not part of area %d", *filter.SubArea, *identity.Area)
			}
			scope.SubArea = filter.SubArea
		}

	case domain.RoleZM:
		if filter.Zone != nil && *filter.Zone != *identity.Zone {
			return domain.Scope{}, errors.Wrapf(domain.ErrForbidden,
				"zonal manager of zone %d requested zone %d", *identity.Zone, *filter.Zone)
		}
		scope.Zone = identity.Zone
		if filter.Area != nil {
			if !domain.IsValidArea(*filter.Area, identity.Zone) {
				return domain.Scope{}, errors.Wrapf(domain.ErrInvalidHierarchy,
					"area %d is not part of zone %d", *filter.Area, *identity.Zone)
			}
			scope.Area = filter.Area
		}
		if filter.SubArea != nil {
			if !domain.ValidateHierarchy(scope.Zone, scope.Area, filter.SubArea) {
				return domain.Scope{}, errors.Wrapf(domain.ErrInvalidHierarchy,
					"sub-area %d is outside the requested scope", *filter.SubArea)
			}
			scope.SubArea = filter.SubArea
		}

	case domain.RoleAGM, domain.RoleManagement:
		if filter.Zone != nil {
			if !domain.IsValidZone(*filter.Zone) {
				return domain.Scope{}, errors.Wrapf(domain.ErrInvalidHierarchy,
					"zone %d out of range", *filter.Zone)
			}
			scope.Zone = filter.Zone
		}
		if filter.Area != nil {
			if !domain.IsValidArea(*filter.Area, scope.Zone) {
				return domain.Scope{}, errors.Wrapf(domain.ErrInvalidHierarchy,
					"area %d is inconsistent with the requested zone", *filter.Area)
			}
			scope.Area = filter.Area
		}
		if filter.SubArea != nil {
			if !domain.ValidateHierarchy(scope.Zone, scope.Area, filter.SubArea) {
				return domain.Scope{}, errors.Wrapf(domain.ErrInvalidHierarchy,
					"sub-area %d is inconsistent with the requested zone/area", *filter.SubArea)
			}
			scope.SubArea = filter.SubArea
		}

	default:
		return domain.Scope{}, errors.Wrapf(domain.ErrInvalidRole, "role %q cannot be scoped", identity.Role)
	}

	return scope, nil
}
