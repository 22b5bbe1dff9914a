// Package aggregating is the read-side reporting view: scoped sale rows
// folded into totals per zone, area or sub-area.
package aggregating

import (
	"sort"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authorizing"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/utils"
)

// Grain is the grouping granularity of a report.
type Grain string

const (
	GrainZone    Grain = "zone"
	GrainArea    Grain = "area"
	GrainSubArea Grain = "sub_area"
)

// Bucket is one group's totals. Performance is sold/received as a
// percentage rounded to two decimals; 0 when nothing was received, never a
// division fault.
type Bucket struct {
	Zone             int     `json:"zone"`
	Area             *int    `json:"area,omitempty"`
	SubArea          *int    `json:"sub_area,omitempty"`
	QuantityReceived float64 `json:"quantity_received"`
	QuantitySold     float64 `json:"quantity_sold"`
	QuantityExpired  float64 `json:"quantity_expired"`
	SaleCount        int     `json:"sale_count"`
	Performance      float64 `json:"performance"`
}

// Report is the grouped view returned to dashboards.
type Report struct {
	Grain   Grain    `json:"grain"`
	Buckets []Bucket `json:"buckets"`
}

type Aggregator interface {
	Aggregate(identity domain.Identity, filter domain.SaleFilter) (*Report, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	resolver authorizing.Resolver
}

func NewService(saleRepo repository.SaleRepository, resolver authorizing.Resolver) Aggregator {
	return &Service{
		saleRepo: saleRepo,
		resolver: resolver,
	}
}

// Aggregate resolves the caller's scope, reads the matching sales and groups
// them at the role's natural grain: management and AGM see zones, zonal
// managers see areas, executives and agents see sub-areas.
func (s *Service) Aggregate(identity domain.Identity, filter domain.SaleFilter) (*Report, error) {
	scope, err := s.resolver.Resolve(identity, filter)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.FindByScope(scope)
	if err != nil {
		return nil, err
	}

	grain := GrainForRole(identity.Role)

	var buckets []Bucket
	switch grain {
	case GrainZone:
		buckets = AggregateByZone(sales)
	case GrainArea:
		buckets = AggregateByArea(sales)
	default:
		buckets = AggregateBySubArea(sales)
	}

	return &Report{Grain: grain, Buckets: buckets}, nil
}

// GrainForRole maps a role to its natural reporting granularity.
func GrainForRole(role domain.Role) Grain {
	switch role {
	case domain.RoleManagement, domain.RoleAGM:
		return GrainZone
	case domain.RoleZM:
		return GrainArea
	default:
		return GrainSubArea
	}
}

// AggregateByZone groups sales into one bucket per zone.
func AggregateByZone(sales []*domain.SaleEntry) []Bucket {
	return aggregate(sales, func(sale *domain.SaleEntry) (int, Bucket) {
		return sale.Zone, Bucket{Zone: sale.Zone}
	})
}

// AggregateByArea groups sales into one bucket per area.
func AggregateByArea(sales []*domain.SaleEntry) []Bucket {
	return aggregate(sales, func(sale *domain.SaleEntry) (int, Bucket) {
		area := sale.Area
		return area, Bucket{Zone: sale.Zone, Area: &area}
	})
}

// AggregateBySubArea groups sales into one bucket per sub-area.
func AggregateBySubArea(sales []*domain.SaleEntry) []Bucket {
	return aggregate(sales, func(sale *domain.SaleEntry) (int, Bucket) {
		area, subArea := sale.Area, sale.SubArea
		return subArea, Bucket{Zone: sale.Zone, Area: &area, SubArea: &subArea}
	})
}

func aggregate(sales []*domain.SaleEntry, keyOf func(*domain.SaleEntry) (int, Bucket)) []Bucket {
	grouped := make(map[int]*Bucket)
	for _, sale := range sales {
		key, seed := keyOf(sale)
		bucket, ok := grouped[key]
		if !ok {
			bucket = &seed
			grouped[key] = bucket
		}
		bucket.QuantityReceived += sale.QuantityReceived
		bucket.QuantitySold += sale.QuantitySold
		bucket.QuantityExpired += sale.QuantityExpired
		bucket.SaleCount++
	}

	keys := make([]int, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	buckets := make([]Bucket, 0, len(grouped))
	for _, key := range keys {
		bucket := grouped[key]
		bucket.Performance = Performance(bucket.QuantitySold, bucket.QuantityReceived)
		buckets = append(buckets, *bucket)
	}

	return buckets
}

// Performance returns sold/received as a percentage with two decimals, and 0
// when nothing was received.
func Performance(sold, received float64) float64 {
	if received == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(sold / received * 100)
}
