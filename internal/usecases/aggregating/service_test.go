package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository/mocks"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authorizing"
)

func intPtr(v int) *int { return &v }

func TestPerformance(t *testing.T) {
	assert.Equal(t, 0.0, Performance(10, 0))
	assert.Equal(t, 100.0, Performance(50, 50))
	assert.Equal(t, 80.0, Performance(80, 100))
	// 130/150 = 86.666... rounds to two decimals.
	assert.Equal(t, 86.67, Performance(130, 150))
}

func TestAggregateByZone(t *testing.T) {
	sales := []*domain.SaleEntry{
		{Zone: 1, Area: 1, SubArea: 1, QuantityReceived: 100, QuantitySold: 80, QuantityExpired: 5},
		{Zone: 1, Area: 2, SubArea: 25, QuantityReceived: 50, QuantitySold: 50},
		{Zone: 3, Area: 10, SubArea: 190, QuantityReceived: 10, QuantitySold: 2},
	}

	buckets := AggregateByZone(sales)

	assert.Len(t, buckets, 2)

	assert.Equal(t, 1, buckets[0].Zone)
	assert.Equal(t, 150.0, buckets[0].QuantityReceived)
	assert.Equal(t, 130.0, buckets[0].QuantitySold)
	assert.Equal(t, 5.0, buckets[0].QuantityExpired)
	assert.Equal(t, 2, buckets[0].SaleCount)
	assert.Equal(t, 86.67, buckets[0].Performance)
	assert.Nil(t, buckets[0].Area)

	assert.Equal(t, 3, buckets[1].Zone)
	assert.Equal(t, 20.0, buckets[1].Performance)
}

func TestAggregateByArea(t *testing.T) {
	sales := []*domain.SaleEntry{
		{Zone: 1, Area: 2, SubArea: 21, QuantityReceived: 40, QuantitySold: 20},
		{Zone: 1, Area: 2, SubArea: 22, QuantityReceived: 60, QuantitySold: 60},
		{Zone: 1, Area: 1, SubArea: 1, QuantityReceived: 10, QuantitySold: 10},
	}

	buckets := AggregateByArea(sales)

	assert.Len(t, buckets, 2)
	// Buckets come back sorted by key.
	assert.Equal(t, 1, *buckets[0].Area)
	assert.Equal(t, 2, *buckets[1].Area)
	assert.Equal(t, 80.0, buckets[1].Performance)
	assert.Equal(t, 2, buckets[1].SaleCount)
}

func TestAggregateBySubArea(t *testing.T) {
	sales := []*domain.SaleEntry{
		{Zone: 1, Area: 1, SubArea: 3, QuantityReceived: 10, QuantitySold: 5},
		{Zone: 1, Area: 1, SubArea: 3, QuantityReceived: 10, QuantitySold: 5},
		{Zone: 1, Area: 1, SubArea: 1, QuantityReceived: 5, QuantitySold: 0},
	}

	buckets := AggregateBySubArea(sales)

	assert.Len(t, buckets, 2)
	assert.Equal(t, 1, *buckets[0].SubArea)
	assert.Equal(t, 0.0, buckets[0].Performance)
	assert.Equal(t, 3, *buckets[1].SubArea)
	assert.Equal(t, 50.0, buckets[1].Performance)
	assert.Equal(t, 2, buckets[1].SaleCount)
}

func TestAggregate_EmptyScope(t *testing.T) {
	assert.Empty(t, AggregateByZone(nil))
}

func TestGrainForRole(t *testing.T) {
	assert.Equal(t, GrainZone, GrainForRole(domain.RoleManagement))
	assert.Equal(t, GrainZone, GrainForRole(domain.RoleAGM))
	assert.Equal(t, GrainArea, GrainForRole(domain.RoleZM))
	assert.Equal(t, GrainSubArea, GrainForRole(domain.RoleExecutive))
	assert.Equal(t, GrainSubArea, GrainForRole(domain.RoleAgent))
}

func TestAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(mockSaleRepo, authorizing.NewService())

	t.Run("zm report groups by area within the own zone", func(t *testing.T) {
		identity := domain.Identity{EmployeeID: "ZM-001", Role: domain.RoleZM, Zone: intPtr(1)}

		mockSaleRepo.EXPECT().
			FindByScope(gomock.Any()).
			DoAndReturn(func(scope domain.Scope) ([]*domain.SaleEntry, error) {
				assert.Equal(t, 1, *scope.Zone)
				return []*domain.SaleEntry{
					{Zone: 1, Area: 1, SubArea: 1, QuantityReceived: 100, QuantitySold: 80},
					{Zone: 1, Area: 2, SubArea: 21, QuantityReceived: 50, QuantitySold: 50},
				}, nil
			})

		report, err := service.Aggregate(identity, domain.SaleFilter{})
		assert.NoError(t, err)
		assert.Equal(t, GrainArea, report.Grain)
		assert.Len(t, report.Buckets, 2)
	})

	t.Run("management report groups by zone", func(t *testing.T) {
		identity := domain.Identity{EmployeeID: "MGMT-001", Role: domain.RoleManagement}

		mockSaleRepo.EXPECT().
			FindByScope(gomock.Any()).
			Return([]*domain.SaleEntry{
				{Zone: 1, Area: 1, SubArea: 1, QuantityReceived: 10, QuantitySold: 10},
				{Zone: 2, Area: 5, SubArea: 85, QuantityReceived: 10, QuantitySold: 5},
			}, nil)

		report, err := service.Aggregate(identity, domain.SaleFilter{})
		assert.NoError(t, err)
		assert.Equal(t, GrainZone, report.Grain)
		assert.Len(t, report.Buckets, 2)
	})

	t.Run("out-of-scope filter fails before any read", func(t *testing.T) {
		identity := domain.Identity{EmployeeID: "ZM-001", Role: domain.RoleZM, Zone: intPtr(1)}

		_, err := service.Aggregate(identity, domain.SaleFilter{Zone: intPtr(2)})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
