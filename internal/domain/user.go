package domain

import "time"

// User is a provisioned employee account. EmployeeID is the business key
// ("AGT-Z1A1-001" style) and is unique; the same identifier is what sale rows
// reference as AgentID.
type User struct {
	EmployeeID   string    `json:"employee_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Zone         *int      `json:"zone,omitempty"`
	Area         *int      `json:"area,omitempty"`
	SubArea      *int      `json:"sub_area,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity projects the stored account into the caller identity consumed by
// the policy layer.
func (u *User) Identity() Identity {
	return Identity{
		EmployeeID: u.EmployeeID,
		Role:       u.Role,
		Zone:       u.Zone,
		Area:       u.Area,
		SubArea:    u.SubArea,
	}
}

// CreateUserRequest is the provisioning payload accepted from management.
type CreateUserRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	Zone       *int   `json:"zone,omitempty"`
	Area       *int   `json:"area,omitempty"`
	SubArea    *int   `json:"sub_area,omitempty"`
}
