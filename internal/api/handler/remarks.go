package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/remarking"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/apiErrors"
)

type remarkRequest struct {
	Text string `json:"text"`
}

type dailyRemarkRequest struct {
	AgentID string `json:"agent_id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// AddAgentRemark lets an agent annotate their own sale entry.
func AddAgentRemark(service remarking.RemarkService) http.HandlerFunc {
	return saleRemarkHandler(func(service remarking.RemarkService, identity domain.Identity, saleID, text string) error {
		return service.AddAgentRemark(identity, saleID, text)
	}, service)
}

// AddExecutiveRemark lets an executive annotate a sale in their own area.
func AddExecutiveRemark(service remarking.RemarkService) http.HandlerFunc {
	return saleRemarkHandler(func(service remarking.RemarkService, identity domain.Identity, saleID, text string) error {
		return service.AddExecutiveRemark(identity, saleID, text)
	}, service)
}

func saleRemarkHandler(
	attach func(remarking.RemarkService, domain.Identity, string, string) error,
	service remarking.RemarkService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeDomainError(w, r, domain.ErrUnauthenticated)
			return
		}

		saleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if saleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sale id is required", nil)
			return
		}

		var req remarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not decode request body", nil)
			return
		}

		if err := attach(service, identity, saleID, req.Text); err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// UpsertDailyRemark records an executive's standalone visit note about an
// agent; one per (executive, agent, day).
func UpsertDailyRemark(service remarking.RemarkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeDomainError(w, r, domain.ErrUnauthenticated)
			return
		}

		var req dailyRemarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not decode request body", nil)
			return
		}

		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Date must be YYYY-MM-DD", nil)
			return
		}

		status, remark, err := service.UpsertDailyRemark(identity, req.AgentID, date, req.Content)
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
			"remark": remark,
		})
	}
}

// ListDailyRemarks returns standalone remarks within the caller's scope.
func ListDailyRemarks(service remarking.RemarkService) http.HandlerFunc {
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

		remarks, err := service.ListDailyRemarks(identity, filter)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, remarks)
	}
}
