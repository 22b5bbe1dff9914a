package handler

import (
	"net/http"
	"time"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/aggregating"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/utils"
)

// GetAggregateReport returns scoped sale totals grouped at the caller's
// natural granularity (zone for management/AGM, area for ZMs, sub-area
// otherwise).
func GetAggregateReport(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeDomainError(w, r, domain.ErrUnauthenticated)
			return
		}

		filter, err := parseSaleFilter(r)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		report, err := service.Aggregate(identity, filter)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, report)
	}
}

// ListZoneSummaries returns the precomputed nightly zone snapshots for a
// date range (defaults to the last 7 days).
func ListZoneSummaries(summaryRepo repository.ZoneSummaryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endDate := time.Now().UTC()
		startDate := endDate.AddDate(0, 0, -7)

		if parsed, err := utils.ParseDate(r.URL.Query().Get("start_date")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
			return
		} else if parsed != nil {
			startDate = *parsed
		}

		if parsed, err := utils.ParseDate(r.URL.Query().Get("end_date")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
			return
		} else if parsed != nil {
			endDate = *parsed
		}

		summaries, err := summaryRepo.ListByDateRange(startDate, endDate)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, summaries)
	}
}
