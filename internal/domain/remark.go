package domain

import "time"

// ExecutiveRemark is a standalone annotation of one agent's day, distinct
// from the per-sale executive remark fields on SaleEntry. At most one row
// exists per (ExecutiveID, AgentID, Date); the store enforces this with a
// unique constraint and an atomic upsert. Coordinates are copied from the
// target agent's identity.
type ExecutiveRemark struct {
	ID          string    `json:"id"`
	ExecutiveID string    `json:"executive_id"`
	AgentID     string    `json:"agent_id"`
	Date        time.Time `json:"date"`
	Content     string    `json:"content"`
	Zone        int       `json:"zone"`
	Area        int       `json:"area"`
	SubArea     int       `json:"sub_area"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
