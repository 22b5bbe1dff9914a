package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestZoneOfArea(t *testing.T) {
	// ceil(area/4): areas 1..4 belong to zone 1, 5..8 to zone 2, and so on.
	for area := 1; area <= AreaCount; area++ {
		expected := (area + AreasPerZone - 1) / AreasPerZone
		assert.Equal(t, expected, ZoneOfArea(area), "area %d", area)
	}

	assert.Equal(t, 1, ZoneOfArea(1))
	assert.Equal(t, 1, ZoneOfArea(4))
	assert.Equal(t, 2, ZoneOfArea(5))
	assert.Equal(t, 6, ZoneOfArea(24))
}

func TestAreaOfSubArea(t *testing.T) {
	assert.Equal(t, 1, AreaOfSubArea(1))
	assert.Equal(t, 1, AreaOfSubArea(20))
	assert.Equal(t, 2, AreaOfSubArea(21))
	assert.Equal(t, 24, AreaOfSubArea(480))

	// Every sub-area chains to a valid area, and every area to a valid zone.
	for subArea := 1; subArea <= SubAreaCount; subArea++ {
		area := AreaOfSubArea(subArea)
		assert.True(t, IsValidArea(area, nil), "sub-area %d maps to area %d", subArea, area)
		assert.True(t, IsValidZone(ZoneOfArea(area)), "area %d maps to an invalid zone", area)
	}
}

func TestIsValidZone(t *testing.T) {
	assert.False(t, IsValidZone(0))
	assert.True(t, IsValidZone(1))
	assert.True(t, IsValidZone(6))
	assert.False(t, IsValidZone(7))
	assert.False(t, IsValidZone(-1))
}

func TestIsValidArea(t *testing.T) {
	assert.False(t, IsValidArea(0, nil))
	assert.True(t, IsValidArea(1, nil))
	assert.True(t, IsValidArea(24, nil))
	assert.False(t, IsValidArea(25, nil))

	// With a zone, membership is checked too.
	assert.True(t, IsValidArea(4, intPtr(1)))
	assert.False(t, IsValidArea(5, intPtr(1)))
	assert.True(t, IsValidArea(5, intPtr(2)))
}

func TestIsValidSubArea(t *testing.T) {
	assert.False(t, IsValidSubArea(0, nil))
	assert.True(t, IsValidSubArea(1, nil))
	assert.True(t, IsValidSubArea(480, nil))
	assert.False(t, IsValidSubArea(481, nil))

	assert.True(t, IsValidSubArea(20, intPtr(1)))
	assert.False(t, IsValidSubArea(21, intPtr(1)))
	assert.True(t, IsValidSubArea(21, intPtr(2)))
}

func TestValidateHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		zone     *int
		area     *int
		subArea  *int
		expected bool
	}{
		{name: "all absent", expected: true},
		{name: "zone only", zone: intPtr(3), expected: true},
		{name: "zone out of range", zone: intPtr(7), expected: false},
		{name: "consistent zone and area", zone: intPtr(1), area: intPtr(4), expected: true},
		{name: "area outside zone", zone: intPtr(1), area: intPtr(5), expected: false},
		{name: "full consistent chain", zone: intPtr(1), area: intPtr(2), subArea: intPtr(25), expected: true},
		{name: "sub-area outside area", zone: intPtr(1), area: intPtr(2), subArea: intPtr(20), expected: false},
		{name: "area without zone", area: intPtr(10), expected: true},
		{name: "sub-area without area", subArea: intPtr(100), expected: true},
		{name: "sub-area chains to given zone", zone: intPtr(1), subArea: intPtr(80), expected: true},
		{name: "sub-area outside given zone", zone: intPtr(1), subArea: intPtr(81), expected: false},
		{name: "sub-area out of range", subArea: intPtr(481), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateHierarchy(tt.zone, tt.area, tt.subArea))
		})
	}
}

func TestIdentityValidate(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		wantErr  error
	}{
		{
			name:     "valid agent",
			identity: Identity{EmployeeID: "AGT-001", Role: RoleAgent, Zone: intPtr(1), Area: intPtr(1), SubArea: intPtr(5)},
		},
		{
			name:     "agent missing sub-area",
			identity: Identity{EmployeeID: "AGT-002", Role: RoleAgent, Zone: intPtr(1), Area: intPtr(1)},
			wantErr:  ErrInvalidHierarchy,
		},
		{
			name:     "valid executive",
			identity: Identity{EmployeeID: "EXEC-001", Role: RoleExecutive, Zone: intPtr(2), Area: intPtr(6)},
		},
		{
			name:     "executive with area outside zone",
			identity: Identity{EmployeeID: "EXEC-002", Role: RoleExecutive, Zone: intPtr(2), Area: intPtr(4)},
			wantErr:  ErrInvalidHierarchy,
		},
		{
			name:     "valid zm",
			identity: Identity{EmployeeID: "ZM-003", Role: RoleZM, Zone: intPtr(3)},
		},
		{
			name:     "zm missing zone",
			identity: Identity{EmployeeID: "ZM-004", Role: RoleZM},
			wantErr:  ErrInvalidHierarchy,
		},
		{
			name:     "management needs no coordinates",
			identity: Identity{EmployeeID: "MGMT-001", Role: RoleManagement},
		},
		{
			name:     "unknown role",
			identity: Identity{EmployeeID: "X-001", Role: Role("intern")},
			wantErr:  ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
