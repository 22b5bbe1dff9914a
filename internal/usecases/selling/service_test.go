package selling

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

func agentIdentity() domain.Identity {
	return domain.Identity{
		EmployeeID: "AGT-Z1A1-001",
		Role:       domain.RoleAgent,
		Zone:       intPtr(1),
		Area:       intPtr(1),
		SubArea:    intPtr(5),
	}
}

func TestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(mockSaleRepo, authorizing.NewService())

	date := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	t.Run("first submission creates a row with the derived unsold quantity", func(t *testing.T) {
		var captured *domain.SaleEntry
		mockSaleRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(sale *domain.SaleEntry) (domain.SubmitStatus, *domain.SaleEntry, error) {
				captured = sale
				return domain.StatusCreated, sale, nil
			})

		status, stored, err := service.Submit(agentIdentity(), SubmitRequest{
			Date:             date,
			MilkType:         domain.MilkToned,
			QuantityReceived: 100,
			QuantitySold:     60,
			QuantityExpired:  5,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCreated, status)
		assert.NotNil(t, stored)
		assert.Equal(t, 35.0, captured.UnsoldQuantity)
		assert.Equal(t, "AGT-Z1A1-001", captured.AgentID)
		assert.Equal(t, 1, captured.Zone)
		assert.Equal(t, 1, captured.Area)
		assert.Equal(t, 5, captured.SubArea)
		// The date is stored truncated to the calendar day.
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), captured.Date)
	})

	t.Run("resubmission updates and recomputes the unsold quantity", func(t *testing.T) {
		var captured *domain.SaleEntry
		mockSaleRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(sale *domain.SaleEntry) (domain.SubmitStatus, *domain.SaleEntry, error) {
				captured = sale
				return domain.StatusUpdated, sale, nil
			})

		status, _, err := service.Submit(agentIdentity(), SubmitRequest{
			Date:             date,
			MilkType:         domain.MilkToned,
			QuantityReceived: 100,
			QuantitySold:     70,
			QuantityExpired:  5,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusUpdated, status)
		assert.Equal(t, 25.0, captured.UnsoldQuantity)
	})

	t.Run("sold above received is stored, not rejected", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(sale *domain.SaleEntry) (domain.SubmitStatus, *domain.SaleEntry, error) {
				return domain.StatusCreated, sale, nil
			})

		_, stored, err := service.Submit(agentIdentity(), SubmitRequest{
			Date:             date,
			MilkType:         domain.MilkSkimmed,
			QuantityReceived: 50,
			QuantitySold:     60,
		})

		assert.NoError(t, err)
		assert.Equal(t, -10.0, stored.UnsoldQuantity)
	})
}

func TestSubmit_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository call may happen on any rejected submission.
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(mockSaleRepo, authorizing.NewService())

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := SubmitRequest{Date: date, MilkType: domain.MilkFullCream, QuantityReceived: 10, QuantitySold: 5}

	tests := []struct {
		name     string
		identity domain.Identity
		req      SubmitRequest
		wantErr  error
	}{
		{
			name:     "non-agent roles cannot submit",
			identity: domain.Identity{EmployeeID: "EXEC-001", Role: domain.RoleExecutive, Zone: intPtr(1), Area: intPtr(1)},
			req:      valid,
			wantErr:  domain.ErrForbidden,
		},
		{
			name: "misconfigured hierarchy is rejected, never clamped",
			identity: domain.Identity{
				EmployeeID: "AGT-BAD", Role: domain.RoleAgent,
				Zone: intPtr(2), Area: intPtr(1), SubArea: intPtr(5),
			},
			req:     valid,
			wantErr: domain.ErrInvalidHierarchy,
		},
		{
			name:     "zero date",
			identity: agentIdentity(),
			req:      SubmitRequest{MilkType: domain.MilkFullCream, QuantityReceived: 10},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "unknown milk type",
			identity: agentIdentity(),
			req:      SubmitRequest{Date: date, MilkType: domain.MilkType("almond"), QuantityReceived: 10},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "negative quantity",
			identity: agentIdentity(),
			req:      SubmitRequest{Date: date, MilkType: domain.MilkFullCream, QuantityReceived: -1},
			wantErr:  domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.Submit(tt.identity, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(mockSaleRepo, authorizing.NewService())

	t.Run("agent scope pins the agent id", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			FindByScope(gomock.Any()).
			DoAndReturn(func(scope domain.Scope) ([]*domain.SaleEntry, error) {
				assert.Equal(t, "AGT-Z1A1-001", scope.AgentID)
				return []*domain.SaleEntry{{ID: "s1", AgentID: "AGT-Z1A1-001"}}, nil
			})

		sales, err := service.Query(agentIdentity(), domain.SaleFilter{})
		assert.NoError(t, err)
		assert.Len(t, sales, 1)
	})

	t.Run("zm scope pins the zone", func(t *testing.T) {
		identity := domain.Identity{EmployeeID: "ZM-003", Role: domain.RoleZM, Zone: intPtr(3)}

		mockSaleRepo.EXPECT().
			FindByScope(gomock.Any()).
			DoAndReturn(func(scope domain.Scope) ([]*domain.SaleEntry, error) {
				assert.Equal(t, 3, *scope.Zone)
				return []*domain.SaleEntry{}, nil
			})

		sales, err := service.Query(identity, domain.SaleFilter{})
		assert.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("out-of-scope filter never reaches the repository", func(t *testing.T) {
		identity := domain.Identity{EmployeeID: "EXEC-001", Role: domain.RoleExecutive, Zone: intPtr(1), Area: intPtr(1)}

		_, err := service.Query(identity, domain.SaleFilter{Area: intPtr(2)})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
