// Package remarking attaches annotations to sale records: agents on their
// own rows, executives on rows of their own area, plus the standalone
// one-per-day executive remark about an agent.
package remarking

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authorizing"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/utils"
)

type RemarkService interface {
	AddAgentRemark(identity domain.Identity, saleID, text string) error
	AddExecutiveRemark(identity domain.Identity, saleID, text string) error
	UpsertDailyRemark(identity domain.Identity, agentID string, date time.Time, content string) (domain.SubmitStatus, *domain.ExecutiveRemark, error)
	ListDailyRemarks(identity domain.Identity, filter domain.SaleFilter) ([]*domain.ExecutiveRemark, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	remarkRepo repository.ExecutiveRemarkRepository
	userRepo   repository.UserRepository
	resolver   authorizing.Resolver
}

func NewService(
	saleRepo repository.SaleRepository,
	remarkRepo repository.ExecutiveRemarkRepository,
	userRepo repository.UserRepository,
	resolver authorizing.Resolver,
) RemarkService {
	return &Service{
		saleRepo:   saleRepo,
		remarkRepo: remarkRepo,
		userRepo:   userRepo,
		resolver:   resolver,
	}
}

// AddAgentRemark sets the agent-authored remark on the agent's own sale.
// A missing sale and a foreign sale fail with distinguishable kinds.
func (s *Service) AddAgentRemark(identity domain.Identity, saleID, text string) error {
	if text == "" {
		return errors.Wrap(domain.ErrInvalidInput, "remark text is required")
	}

	sale, err := s.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return errors.Wrapf(domain.ErrNotFound, "sale %s", saleID)
	}
	if sale.AgentID != identity.EmployeeID {
		return errors.Wrapf(domain.ErrForbidden, "sale %s belongs to another agent", saleID)
	}

	return s.saleRepo.UpdateAgentRemark(saleID, text)
}

// AddExecutiveRemark sets the executive fields on a sale in the executive's
// own zone+area. Agent-authored fields are never touched.
func (s *Service) AddExecutiveRemark(identity domain.Identity, saleID, text string) error {
	if identity.Role != domain.RoleExecutive {
		return errors.Wrapf(domain.ErrForbidden, "role %q cannot add executive remarks", identity.Role)
	}
	if err := identity.Validate(); err != nil {
		return err
	}
	if text == "" {
		return errors.Wrap(domain.ErrInvalidInput, "remark text is required")
	}

	sale, err := s.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return errors.Wrapf(domain.ErrNotFound, "sale %s", saleID)
	}
	if sale.Zone != *identity.Zone || sale.Area != *identity.Area {
		return errors.Wrapf(domain.ErrForbidden,
			"sale %s is in zone %d area %d, outside the executive's area", saleID, sale.Zone, sale.Area)
	}

	return s.saleRepo.UpdateExecutiveRemark(saleID, identity.EmployeeID, text, time.Now().UTC())
}

// UpsertDailyRemark records the executive's standalone visit note about an
// agent, at most one per (executive, agent, day). The target agent must
// belong to the executive's area and carry canonical coordinates.
func (s *Service) UpsertDailyRemark(identity domain.Identity, agentID string, date time.Time, content string) (domain.SubmitStatus, *domain.ExecutiveRemark, error) {
	if identity.Role != domain.RoleExecutive {
		return "", nil, errors.Wrapf(domain.ErrForbidden, "role %q cannot add daily remarks", identity.Role)
	}
	if err := identity.Validate(); err != nil {
		return "", nil, err
	}
	if content == "" {
		return "", nil, errors.Wrap(domain.ErrInvalidInput, "remark content is required")
	}
	if date.IsZero() {
		return "", nil, errors.Wrap(domain.ErrInvalidInput, "date is required")
	}

	agent, err := s.userRepo.GetByEmployeeID(agentID)
	if err != nil {
		return "", nil, err
	}
	if agent == nil {
		return "", nil, errors.Wrapf(domain.ErrNotFound, "agent %s", agentID)
	}
	if agent.Role != domain.RoleAgent {
		return "", nil, errors.Wrapf(domain.ErrInvalidInput, "employee %s is not an agent", agentID)
	}
	if agent.Zone == nil || agent.Area == nil || agent.SubArea == nil ||
		!domain.ValidateHierarchy(agent.Zone, agent.Area, agent.SubArea) {
		return "", nil, errors.Wrapf(domain.ErrInvalidHierarchy, "agent %s hierarchy misconfigured", agentID)
	}
	if *agent.Zone != *identity.Zone || *agent.Area != *identity.Area {
		return "", nil, errors.Wrapf(domain.ErrForbidden, "agent %s is outside the executive's area", agentID)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", nil, errors.Wrap(err, "generating remark id")
	}

	remark := &domain.ExecutiveRemark{
		ID:          id,
		ExecutiveID: identity.EmployeeID,
		AgentID:     agentID,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Content:     content,
		Zone:        *agent.Zone,
		Area:        *agent.Area,
		SubArea:     *agent.SubArea,
	}

	status, stored, err := s.remarkRepo.Upsert(remark)
	if err != nil {
		return "", nil, err
	}

	logrus.WithFields(logrus.Fields{
		"executive_id": identity.EmployeeID,
		"agent_id":     agentID,
		"date":         remark.Date.Format(time.DateOnly),
		"status":       status,
	}).Info("remarks: daily remark stored")

	return status, stored, nil
}

// ListDailyRemarks reads standalone remarks within the caller's resolved
// scope.
func (s *Service) ListDailyRemarks(identity domain.Identity, filter domain.SaleFilter) ([]*domain.ExecutiveRemark, error) {
	scope, err := s.resolver.Resolve(identity, filter)
	if err != nil {
		return nil, err
	}

	return s.remarkRepo.FindByScope(scope)
}
