package remarking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository/mocks"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authorizing"
)

func intPtr(v int) *int { return &v }

type remarkMocks struct {
	saleRepo   *mocks.MockSaleRepository
	remarkRepo *mocks.MockExecutiveRemarkRepository
	userRepo   *mocks.MockUserRepository
}

func newRemarkService(t *testing.T) (RemarkService, remarkMocks) {
	ctrl := gomock.NewController(t)
	m := remarkMocks{
		saleRepo:   mocks.NewMockSaleRepository(ctrl),
		remarkRepo: mocks.NewMockExecutiveRemarkRepository(ctrl),
		userRepo:   mocks.NewMockUserRepository(ctrl),
	}
	return NewService(m.saleRepo, m.remarkRepo, m.userRepo, authorizing.NewService()), m
}

func executiveIdentity() domain.Identity {
	return domain.Identity{
		EmployeeID: "EXEC-001",
		Role:       domain.RoleExecutive,
		Zone:       intPtr(1),
		Area:       intPtr(1),
	}
}

func TestAddAgentRemark(t *testing.T) {
	agent := domain.Identity{
		EmployeeID: "AGT-Z1A1-001",
		Role:       domain.RoleAgent,
		Zone:       intPtr(1), Area: intPtr(1), SubArea: intPtr(5),
	}

	t.Run("own sale is annotated", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.saleRepo.EXPECT().GetByID("s1").Return(&domain.SaleEntry{ID: "s1", AgentID: "AGT-Z1A1-001"}, nil)
		m.saleRepo.EXPECT().UpdateAgentRemark("s1", "short supply today").Return(nil)

		assert.NoError(t, service.AddAgentRemark(agent, "s1", "short supply today"))
	})

	t.Run("foreign sale is forbidden, not not-found", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.saleRepo.EXPECT().GetByID("s2").Return(&domain.SaleEntry{ID: "s2", AgentID: "AGT-OTHER"}, nil)

		err := service.AddAgentRemark(agent, "s2", "note")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing sale is not-found", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.saleRepo.EXPECT().GetByID("nope").Return(nil, nil)

		err := service.AddAgentRemark(agent, "nope", "note")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty text is invalid", func(t *testing.T) {
		service, _ := newRemarkService(t)

		err := service.AddAgentRemark(agent, "s1", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAddExecutiveRemark(t *testing.T) {
	t.Run("sale in the own area is annotated with executive fields", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.saleRepo.EXPECT().GetByID("s1").Return(&domain.SaleEntry{ID: "s1", Zone: 1, Area: 1}, nil)
		m.saleRepo.EXPECT().
			UpdateExecutiveRemark("s1", "EXEC-001", "verify expiry handling", gomock.Any()).
			DoAndReturn(func(_, _, _ string, at time.Time) error {
				assert.WithinDuration(t, time.Now().UTC(), at, 5*time.Second)
				return nil
			})

		assert.NoError(t, service.AddExecutiveRemark(executiveIdentity(), "s1", "verify expiry handling"))
	})

	t.Run("sale outside the own area is forbidden", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.saleRepo.EXPECT().GetByID("s2").Return(&domain.SaleEntry{ID: "s2", Zone: 1, Area: 2}, nil)

		err := service.AddExecutiveRemark(executiveIdentity(), "s2", "note")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("non-executive roles are rejected", func(t *testing.T) {
		service, _ := newRemarkService(t)
		zm := domain.Identity{EmployeeID: "ZM-001", Role: domain.RoleZM, Zone: intPtr(1)}

		err := service.AddExecutiveRemark(zm, "s1", "note")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing sale is not-found", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.saleRepo.EXPECT().GetByID("nope").Return(nil, nil)

		err := service.AddExecutiveRemark(executiveIdentity(), "nope", "note")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpsertDailyRemark(t *testing.T) {
	date := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	agentRow := &domain.User{
		EmployeeID: "AGT-Z1A1-001",
		Role:       domain.RoleAgent,
		Zone:       intPtr(1), Area: intPtr(1), SubArea: intPtr(5),
	}

	t.Run("remark carries the agent's coordinates and a truncated date", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.userRepo.EXPECT().GetByEmployeeID("AGT-Z1A1-001").Return(agentRow, nil)

		var captured *domain.ExecutiveRemark
		m.remarkRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(remark *domain.ExecutiveRemark) (domain.SubmitStatus, *domain.ExecutiveRemark, error) {
				captured = remark
				return domain.StatusCreated, remark, nil
			})

		status, stored, err := service.UpsertDailyRemark(executiveIdentity(), "AGT-Z1A1-001", date, "visited the booth")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCreated, status)
		assert.NotNil(t, stored)
		assert.Equal(t, "EXEC-001", captured.ExecutiveID)
		assert.Equal(t, 1, captured.Zone)
		assert.Equal(t, 1, captured.Area)
		assert.Equal(t, 5, captured.SubArea)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), captured.Date)
	})

	t.Run("second write for the same day updates", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.userRepo.EXPECT().GetByEmployeeID("AGT-Z1A1-001").Return(agentRow, nil)
		m.remarkRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(remark *domain.ExecutiveRemark) (domain.SubmitStatus, *domain.ExecutiveRemark, error) {
				return domain.StatusUpdated, remark, nil
			})

		status, _, err := service.UpsertDailyRemark(executiveIdentity(), "AGT-Z1A1-001", date, "revised note")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusUpdated, status)
	})

	t.Run("agent outside the executive's area is forbidden", func(t *testing.T) {
		service, m := newRemarkService(t)
		foreign := &domain.User{
			EmployeeID: "AGT-Z1A2-001",
			Role:       domain.RoleAgent,
			Zone:       intPtr(1), Area: intPtr(2), SubArea: intPtr(25),
		}
		m.userRepo.EXPECT().GetByEmployeeID("AGT-Z1A2-001").Return(foreign, nil)

		_, _, err := service.UpsertDailyRemark(executiveIdentity(), "AGT-Z1A2-001", date, "note")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown agent is not-found", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.userRepo.EXPECT().GetByEmployeeID("AGT-MISSING").Return(nil, nil)

		_, _, err := service.UpsertDailyRemark(executiveIdentity(), "AGT-MISSING", date, "note")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("target that is not an agent is invalid", func(t *testing.T) {
		service, m := newRemarkService(t)
		m.userRepo.EXPECT().GetByEmployeeID("EXEC-002").Return(&domain.User{
			EmployeeID: "EXEC-002", Role: domain.RoleExecutive, Zone: intPtr(1), Area: intPtr(1),
		}, nil)

		_, _, err := service.UpsertDailyRemark(executiveIdentity(), "EXEC-002", date, "note")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("agent with drifted coordinates is rejected", func(t *testing.T) {
		service, m := newRemarkService(t)
		drifted := &domain.User{
			EmployeeID: "AGT-DRIFT",
			Role:       domain.RoleAgent,
			Zone:       intPtr(2), Area: intPtr(1), SubArea: intPtr(5),
		}
		m.userRepo.EXPECT().GetByEmployeeID("AGT-DRIFT").Return(drifted, nil)

		_, _, err := service.UpsertDailyRemark(executiveIdentity(), "AGT-DRIFT", date, "note")
		assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
	})
}

func TestListDailyRemarks(t *testing.T) {
	service, m := newRemarkService(t)

	m.remarkRepo.EXPECT().
		FindByScope(gomock.Any()).
		DoAndReturn(func(scope domain.Scope) ([]*domain.ExecutiveRemark, error) {
			assert.Equal(t, 1, *scope.Zone)
			assert.Equal(t, 1, *scope.Area)
			return []*domain.ExecutiveRemark{{ID: "r1"}}, nil
		})

	remarks, err := service.ListDailyRemarks(executiveIdentity(), domain.SaleFilter{})
	assert.NoError(t, err)
	assert.Len(t, remarks, 1)
}
