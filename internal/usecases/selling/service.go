// Package selling owns the sale write path: validated, idempotent daily
// submissions and scoped reads.
package selling

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authorizing"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/utils"
)

// SubmitRequest is one agent's report for one milk type on one day.
type SubmitRequest struct {
	Date             time.Time       `json:"date"`
	MilkType         domain.MilkType `json:"milk_type"`
	QuantityReceived float64         `json:"quantity_received"`
	QuantitySold     float64         `json:"quantity_sold"`
	QuantityExpired  float64         `json:"quantity_expired"`
	AgentRemarks     *string         `json:"agent_remarks,omitempty"`
}

type SaleService interface {
	Submit(identity domain.Identity, req SubmitRequest) (domain.SubmitStatus, *domain.SaleEntry, error)
	Query(identity domain.Identity, filter domain.SaleFilter) ([]*domain.SaleEntry, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	resolver authorizing.Resolver
}

func NewService(saleRepo repository.SaleRepository, resolver authorizing.Resolver) SaleService {
	return &Service{
		saleRepo: saleRepo,
		resolver: resolver,
	}
}

// Submit creates or updates the caller's sale entry for (date, milkType).
// The derived unsold quantity is recomputed here, not in a storage hook, so
// the invariant is visible and testable without a database. The repository
// upsert guarantees at most one row per key even under concurrent submits.
func (s *Service) Submit(identity domain.Identity, req SubmitRequest) (domain.SubmitStatus, *domain.SaleEntry, error) {
	if identity.Role != domain.RoleAgent {
		return "", nil, errors.Wrapf(domain.ErrForbidden, "role %q cannot submit sales", identity.Role)
	}

	if err := identity.Validate(); err != nil {
		return "", nil, err
	}
	// An agent account whose stored coordinates drifted from the canonical
	// mapping must never write a row; misconfiguration is rejected, not
	// clamped.
	if !domain.ValidateHierarchy(identity.Zone, identity.Area, identity.SubArea) {
		return "", nil, errors.Wrap(domain.ErrInvalidHierarchy, "account hierarchy misconfigured")
	}

	if err := validateSubmit(req); err != nil {
		return "", nil, err
	}

	if req.QuantitySold > req.QuantityReceived {
		// Recorded as a fact for the executive to remark on, never
		// silently corrected or rejected.
		logrus.WithFields(logrus.Fields{
			"agent_id":  identity.EmployeeID,
			"milk_type": req.MilkType,
			"received":  req.QuantityReceived,
			"sold":      req.QuantitySold,
		}).Warn("sales: sold quantity exceeds received quantity")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", nil, errors.Wrap(err, "generating sale id")
	}

	sale := &domain.SaleEntry{
		ID:               id,
		AgentID:          identity.EmployeeID,
		Date:             truncateToDay(req.Date),
		MilkType:         req.MilkType,
		QuantityReceived: req.QuantityReceived,
		QuantitySold:     req.QuantitySold,
		QuantityExpired:  req.QuantityExpired,
		UnsoldQuantity:   req.QuantityReceived - req.QuantitySold - req.QuantityExpired,
		AgentRemarks:     req.AgentRemarks,
		Zone:             *identity.Zone,
		Area:             *identity.Area,
		SubArea:          *identity.SubArea,
	}

	status, stored, err := s.saleRepo.Upsert(sale)
	if err != nil {
		return "", nil, err
	}

	logrus.WithFields(logrus.Fields{
		"agent_id":  identity.EmployeeID,
		"sale_date": sale.Date.Format(time.DateOnly),
		"milk_type": sale.MilkType,
		"status":    status,
	}).Info("sales: submission stored")

	return status, stored, nil
}

// Query resolves the caller's scope and reads the matching rows, newest
// first. All role logic happens in the resolver.
func (s *Service) Query(identity domain.Identity, filter domain.SaleFilter) ([]*domain.SaleEntry, error) {
	scope, err := s.resolver.Resolve(identity, filter)
	if err != nil {
		return nil, err
	}

	return s.saleRepo.FindByScope(scope)
}

func validateSubmit(req SubmitRequest) error {
	if req.Date.IsZero() {
		return errors.Wrap(domain.ErrInvalidInput, "date is required")
	}
	if !req.MilkType.IsValid() {
		return errors.Wrapf(domain.ErrInvalidInput, "unknown milk type %q", req.MilkType)
	}
	if req.QuantityReceived < 0 || req.QuantitySold < 0 || req.QuantityExpired < 0 {
		return errors.Wrap(domain.ErrInvalidInput, "quantities must not be negative")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
