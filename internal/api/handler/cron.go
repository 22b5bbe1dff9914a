package handler

import (
	"net/http"
	"time"

	"github.com/aideveloperindia/KDSMS-sub000/internal/scheduler"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/log"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/utils"
)

// RunSummarySync triggers the zone summary job by hand, defaulting to
// yesterday. A `date` query param rebuilds a specific day instead.
func RunSummarySync(service *scheduler.DailySummarySyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Summary sync service not available", nil)
			return
		}

		day := time.Now().UTC().AddDate(0, 0, -1)
		if parsed, err := utils.ParseDate(r.URL.Query().Get("date")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		} else if parsed != nil {
			day = *parsed
		}

		log.ForContext(r.Context()).WithField("date", day.Format(time.DateOnly)).Info("cron: manual summary sync requested")

		if err := service.RunFor(day); err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]string{
			"message": "Summary sync completed",
			"date":    day.Format(time.DateOnly),
		})
	}
}

// GetCronStatus reports the summary job state.
func GetCronStatus(service *scheduler.DailySummarySyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Summary sync service not available", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"summary": service.Status(),
		})
	}
}
