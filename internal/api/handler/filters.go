package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/utils"
)

// parseSaleFilter reads the optional zone/area/sub_area/date query
// parameters. Range and consistency checks are not done here; the access
// scope resolver owns those.
func parseSaleFilter(r *http.Request) (domain.SaleFilter, error) {
	filter := domain.SaleFilter{}

	for _, param := range []struct {
		name string
		dest **int
	}{
		{"zone", &filter.Zone},
		{"area", &filter.Area},
		{"sub_area", &filter.SubArea},
	} {
		raw := r.URL.Query().Get(param.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return domain.SaleFilter{}, errors.Wrapf(domain.ErrInvalidInput, "%s must be an integer", param.name)
		}
		*param.dest = &value
	}

	date, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		return domain.SaleFilter{}, errors.Wrap(domain.ErrInvalidInput, "date must be YYYY-MM-DD")
	}
	filter.Date = date

	return filter, nil
}
