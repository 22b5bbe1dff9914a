package authorizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestResolve_Agent(t *testing.T) {
	resolver := NewService()
	identity := domain.Identity{
		EmployeeID: "AGT-Z1A1-001",
		Role:       domain.RoleAgent,
		Zone:       intPtr(1),
		Area:       intPtr(1),
		SubArea:    intPtr(5),
	}

	// Hierarchy filters from an agent are ignored, not rejected: the scope
	// always pins the agent's own rows.
	scope, err := resolver.Resolve(identity, domain.SaleFilter{Zone: intPtr(4), Area: intPtr(13)})
	assert.NoError(t, err)
	assert.Equal(t, "AGT-Z1A1-001", scope.AgentID)
	assert.Nil(t, scope.Zone)
	assert.Nil(t, scope.Area)
	assert.Nil(t, scope.SubArea)
}

func TestResolve_Executive(t *testing.T) {
	resolver := NewService()
	identity := domain.Identity{
		EmployeeID: "EXEC-002",
		Role:       domain.RoleExecutive,
		Zone:       intPtr(1),
		Area:       intPtr(2),
	}

	tests := []struct {
		name    string
		filter  domain.SaleFilter
		wantErr error
		check   func(t *testing.T, scope domain.Scope)
	}{
		{
			name:   "no filter pins own zone and area",
			filter: domain.SaleFilter{},
			check: func(t *testing.T, scope domain.Scope) {
				assert.Equal(t, 1, *scope.Zone)
				assert.Equal(t, 2, *scope.Area)
				assert.Nil(t, scope.SubArea)
			},
		},
		{
			name:    "foreign area is forbidden",
			filter:  domain.SaleFilter{Area: intPtr(3)},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "foreign zone is forbidden",
			filter:  domain.SaleFilter{Zone: intPtr(2)},
			wantErr: domain.ErrForbidden,
		},
		{
			name:   "sub-area inside own area narrows the scope",
			filter: domain.SaleFilter{SubArea: intPtr(25)},
			check: func(t *testing.T, scope domain.Scope) {
				assert.Equal(t, 25, *scope.SubArea)
			},
		},
		{
			name:    "sub-area outside own area is rejected",
			filter:  domain.SaleFilter{SubArea: intPtr(20)},
			wantErr: domain.ErrInvalidHierarchy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := resolver.Resolve(identity, tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			tt.check(t, scope)
		})
	}
}

func TestResolve_ZonalManager(t *testing.T) {
	resolver := NewService()
	identity := domain.Identity{
		EmployeeID: "ZM-002",
		Role:       domain.RoleZM,
		Zone:       intPtr(2),
	}

	scope, err := resolver.Resolve(identity, domain.SaleFilter{})
	assert.NoError(t, err)
	assert.Equal(t, 2, *scope.Zone)
	assert.Nil(t, scope.Area)

	// Narrowing to an area of the own zone works.
	scope, err = resolver.Resolve(identity, domain.SaleFilter{Area: intPtr(6)})
	assert.NoError(t, err)
	assert.Equal(t, 6, *scope.Area)

	// An area of another zone does not.
	_, err = resolver.Resolve(identity, domain.SaleFilter{Area: intPtr(4)})
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)

	// Another zone is forbidden outright.
	_, err = resolver.Resolve(identity, domain.SaleFilter{Zone: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolve_Management(t *testing.T) {
	resolver := NewService()
	identity := domain.Identity{EmployeeID: "MGMT-001", Role: domain.RoleManagement}

	// Unfiltered management scope sees everything.
	scope, err := resolver.Resolve(identity, domain.SaleFilter{})
	assert.NoError(t, err)
	assert.Empty(t, scope.AgentID)
	assert.Nil(t, scope.Zone)
	assert.Nil(t, scope.Area)
	assert.Nil(t, scope.SubArea)

	// Filters are free but must be internally consistent.
	scope, err = resolver.Resolve(identity, domain.SaleFilter{Zone: intPtr(3), Area: intPtr(10)})
	assert.NoError(t, err)
	assert.Equal(t, 3, *scope.Zone)
	assert.Equal(t, 10, *scope.Area)

	_, err = resolver.Resolve(identity, domain.SaleFilter{Zone: intPtr(3), Area: intPtr(4)})
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)

	_, err = resolver.Resolve(identity, domain.SaleFilter{Zone: intPtr(9)})
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
}

func TestResolve_UnknownRole(t *testing.T) {
	resolver := NewService()

	_, err := resolver.Resolve(domain.Identity{EmployeeID: "X-001", Role: domain.Role("consultant")}, domain.SaleFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestResolve_DateFilterPassesThrough(t *testing.T) {
	resolver := NewService()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	scope, err := resolver.Resolve(
		domain.Identity{EmployeeID: "AGM-001", Role: domain.RoleAGM},
		domain.SaleFilter{Date: &date},
	)
	assert.NoError(t, err)
	assert.Equal(t, date, *scope.Date)
}
