package domain

import "time"

// MilkType is the product line a sale entry reports on.
type MilkType string

const (
	MilkFullCream    MilkType = "full_cream"
	MilkStandardized MilkType = "standardized"
	MilkToned        MilkType = "toned"
	MilkDoubleToned  MilkType = "double_toned"
	MilkSkimmed      MilkType = "skimmed"
)

// MilkTypes lists the five valid milk types in reporting order.
var MilkTypes = []MilkType{
	MilkFullCream,
	MilkStandardized,
	MilkToned,
	MilkDoubleToned,
	MilkSkimmed,
}

func (m MilkType) IsValid() bool {
	for _, t := range MilkTypes {
		if m == t {
			return true
		}
	}
	return false
}

// SubmitStatus tells the caller whether an upsert created a new row or
// updated an existing one.
type SubmitStatus string

const (
	StatusCreated SubmitStatus = "created"
	StatusUpdated SubmitStatus = "updated"
)

// SaleEntry is one agent's report for one milk type on one calendar day.
// At most one row exists per (AgentID, Date, MilkType); the store enforces
// this with a unique constraint and a single-statement upsert.
//
// UnsoldQuantity is derived (received - sold - expired) and recomputed on
// every write; it is never independently settable. Zone/Area/SubArea are
// copied from the owning agent's identity at creation time. The executive
// fields are written by a second actor after creation and never overwrite
// agent-authored fields.
type SaleEntry struct {
	ID                  string     `json:"id"`
	AgentID             string     `json:"agent_id"`
	Date                time.Time  `json:"date"`
	MilkType            MilkType   `json:"milk_type"`
	QuantityReceived    float64    `json:"quantity_received"`
	QuantitySold        float64    `json:"quantity_sold"`
	QuantityExpired     float64    `json:"quantity_expired"`
	UnsoldQuantity      float64    `json:"unsold_quantity"`
	AgentRemarks        *string    `json:"agent_remarks,omitempty"`
	ExecutiveRemarks    *string    `json:"executive_remarks,omitempty"`
	ExecutiveID         *string    `json:"executive_id,omitempty"`
	ExecutiveRemarkTime *time.Time `json:"executive_remark_time,omitempty"`
	Zone                int        `json:"zone"`
	Area                int        `json:"area"`
	SubArea             int        `json:"sub_area"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
