package handler

import (
	"net/http"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/selling"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/log"
)

// SubmitSale stores an agent's daily report for one milk type. Resubmitting
// the same (date, milk type) updates the existing row.
func SubmitSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeDomainError(w, r, domain.ErrUnauthenticated)
			return
		}

		var req selling.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not decode request body", nil)
			return
		}

		status, sale, err := service.Submit(identity, req)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		httpStatus := http.StatusOK
		if status == domain.StatusCreated {
			httpStatus = http.StatusCreated
		}

		respondJSON(w, r, httpStatus, map[string]any{
			"status": status,
			"sale":   sale,
		})
	}
}

// QuerySales returns the sales visible to the caller, optionally narrowed by
// zone/area/sub_area/date. Filters outside the caller's scope are rejected,
// never silently widened or narrowed.
func QuerySales(service selling.SaleService) http.HandlerFunc {
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

		sales, err := service.Query(identity, filter)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"employee_id": identity.EmployeeID,
			"results":     len(sales),
		}).Debug("sales: query served")

		respondJSON(w, r, http.StatusOK, sales)
	}
}
