package domain

import "time"

// SaleFilter is the client-requested filter as it arrives from the HTTP
// layer. All fields are optional; none of them is trusted until the access
// scope resolver has validated and intersected them with the caller's
// authorized scope.
type SaleFilter struct {
	Zone    *int
	Area    *int
	SubArea *int
	Date    *time.Time
}

// Scope is the authorized subset of the zone/area/subArea space a caller may
// read. It is produced only by the access scope resolver and passed verbatim
// into repository queries; repositories apply it without any role logic.
// A non-empty AgentID pins the scope to that agent's own rows.
type Scope struct {
	AgentID string
	Zone    *int
	Area    *int
	SubArea *int
	Date    *time.Time
}
