package domain

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Role is the organizational role carried by every caller identity.
type Role string

const (
	RoleAgent      Role = "agent"
	RoleExecutive  Role = "executive"
	RoleZM         Role = "zm"
	RoleAGM        Role = "agm"
	RoleManagement Role = "management"
)

// IsValid reports whether r is one of the five known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAgent, RoleExecutive, RoleZM, RoleAGM, RoleManagement:
		return true
	}
	return false
}

// Identity is the resolved caller passed explicitly into every core
// operation. It is produced by the authentication layer; nothing below the
// HTTP handlers reads it from ambient state.
type Identity struct {
	EmployeeID string `json:"employee_id"`
	Role       Role   `json:"role"`
	Zone       *int   `json:"zone,omitempty"`
	Area       *int   `json:"area,omitempty"`
	SubArea    *int   `json:"sub_area,omitempty"`
}

// Validate checks that the role is known, that the levels the role mandates
// are present, and that whatever coordinate is present is canonical.
// Agents need zone+area+subArea, executives zone+area, ZMs zone; AGM and
// management are global.
func (i Identity) Validate() error {
	if !i.Role.IsValid() {
		return errors.Wrapf(ErrInvalidRole, "unknown role %q", i.Role)
	}

	switch i.Role {
	case RoleAgent:
		if i.Zone == nil || i.Area == nil || i.SubArea == nil {
			return errors.Wrap(ErrInvalidHierarchy, "agent identity requires zone, area and sub-area")
		}
	case RoleExecutive:
		if i.Zone == nil || i.Area == nil {
			return errors.Wrap(ErrInvalidHierarchy, "executive identity requires zone and area")
		}
	case RoleZM:
		if i.Zone == nil {
			return errors.Wrap(ErrInvalidHierarchy, "zonal manager identity requires a zone")
		}
	}

	if !ValidateHierarchy(i.Zone, i.Area, i.SubArea) {
		return errors.Wrap(ErrInvalidHierarchy, "account hierarchy misconfigured")
	}

	return nil
}

// Claims is the JWT payload issued at login. It embeds the full Identity so
// handlers can rebuild it without a user lookup per request.
type Claims struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Zone       *int   `json:"zone,omitempty"`
	Area       *int   `json:"area,omitempty"`
	SubArea    *int   `json:"sub_area,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the token claims back into the explicit caller identity.
func (c *Claims) Identity() Identity {
	return Identity{
		EmployeeID: c.EmployeeID,
		Role:       c.Role,
		Zone:       c.Zone,
		Area:       c.Area,
		SubArea:    c.SubArea,
	}
}
