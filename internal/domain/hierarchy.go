package domain

// The organizational hierarchy is a fixed fan-out: 6 zones, 4 areas per zone
// and 20 sub-areas per area. Areas are numbered 1..24 globally and sub-areas
// 1..480 globally, so the parent of each level is fully determined by
// integer division.
const (
	ZoneCount       = 6
	AreasPerZone    = 4
	SubAreasPerArea = 20
	AreaCount       = ZoneCount * AreasPerZone
	SubAreaCount    = AreaCount * SubAreasPerArea
)

// ZoneOfArea returns the unique zone an area belongs to (ceil(area/4)).
func ZoneOfArea(area int) int {
	return (area + AreasPerZone - 1) / AreasPerZone
}

// AreaOfSubArea returns the unique area a sub-area belongs to (ceil(subArea/20)).
func AreaOfSubArea(subArea int) int {
	return (subArea + SubAreasPerArea - 1) / SubAreasPerArea
}

// IsValidZone reports whether zone is in 1..6.
func IsValidZone(zone int) bool {
	return zone >= 1 && zone <= ZoneCount
}

// IsValidArea reports whether area is in 1..24 and, when zone is given,
// whether it actually belongs to that zone.
func IsValidArea(area int, zone *int) bool {
	if area < 1 || area > AreaCount {
		return false
	}
	if zone != nil && ZoneOfArea(area) != *zone {
		return false
	}
	return true
}

// IsValidSubArea reports whether subArea is in 1..480 and, when area is given,
// whether it actually belongs to that area.
func IsValidSubArea(subArea int, area *int) bool {
	if subArea < 1 || subArea > SubAreaCount {
		return false
	}
	if area != nil && AreaOfSubArea(subArea) != *area {
		return false
	}
	return true
}

// ValidateHierarchy reports whether a partial (zone, area, subArea) coordinate
// is consistent. Absent levels are not checked; each present level must be
// in-range and agree with the next-coarser present level. There is no
// tolerance for legacy rows that violate the canonical mapping: callers must
// reject, never clamp.
func ValidateHierarchy(zone, area, subArea *int) bool {
	if zone != nil && !IsValidZone(*zone) {
		return false
	}
	if area != nil && !IsValidArea(*area, zone) {
		return false
	}
	if subArea != nil {
		if !IsValidSubArea(*subArea, area) {
			return false
		}
		// Sub-area given with a zone but no area: the implied area must
		// still chain up to the given zone.
		if area == nil && zone != nil && ZoneOfArea(AreaOfSubArea(*subArea)) != *zone {
			return false
		}
	}
	return true
}
