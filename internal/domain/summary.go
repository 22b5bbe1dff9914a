package domain

import "time"

// ZoneDailySummary is a small, query-friendly aggregate row used by the
// management dashboard. Grain: (SummaryDate, Zone). Derived data: it can be
// rebuilt at any time from the sale rows by the summary sync job.
type ZoneDailySummary struct {
	SummaryDate      time.Time `json:"summary_date"`
	Zone             int       `json:"zone"`
	QuantityReceived float64   `json:"quantity_received"`
	QuantitySold     float64   `json:"quantity_sold"`
	QuantityExpired  float64   `json:"quantity_expired"`
	// Performance is sold/received as a percentage, 0 when nothing was
	// received.
	Performance float64   `json:"performance"`
	SaleCount   int       `json:"sale_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}
