package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/database/postgres"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

const summariesTable = "zone_daily_summaries"

type ZoneSummaryRepository interface {
	SaveOrUpdate(summary *domain.ZoneDailySummary) error
	ListByDateRange(startDate, endDate time.Time) ([]*domain.ZoneDailySummary, error)
}

type zoneSummaryRepository struct {
	conn *postgres.Connection
}

func NewZoneSummaryRepository(conn *postgres.Connection) ZoneSummaryRepository {
	return &zoneSummaryRepository{conn: conn}
}

func (r *zoneSummaryRepository) SaveOrUpdate(summary *domain.ZoneDailySummary) error {
	query, args, err := squirrel.
		Insert(summariesTable).
		Columns("summary_date", "zone", "quantity_received", "quantity_sold", "quantity_expired", "performance", "sale_count").
		Values(
			summary.SummaryDate.Format(time.DateOnly),
			summary.Zone,
			summary.QuantityReceived,
			summary.QuantitySold,
			summary.QuantityExpired,
			summary.Performance,
			summary.SaleCount,
		).
		Suffix(`
			ON CONFLICT (summary_date, zone) DO UPDATE SET
				quantity_received = EXCLUDED.quantity_received,
				quantity_sold = EXCLUDED.quantity_sold,
				quantity_expired = EXCLUDED.quantity_expired,
				performance = EXCLUDED.performance,
				sale_count = EXCLUDED.sale_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building summary upsert")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "executing summary upsert")
	}

	return nil
}

func (r *zoneSummaryRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.ZoneDailySummary, error) {
	query, args, err := squirrel.
		Select("summary_date, zone, quantity_received, quantity_sold, quantity_expired, performance, sale_count, updated_at").
		From(summariesTable).
		Where(squirrel.GtOrEq{"summary_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"summary_date": endDate.Format(time.DateOnly)}).
		OrderBy("summary_date DESC", "zone ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building summary range query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "executing summary range query")
	}
	defer rows.Close()

	summaries := make([]*domain.ZoneDailySummary, 0)
	for rows.Next() {
		summary := &domain.ZoneDailySummary{}
		err := rows.Scan(
			&summary.SummaryDate,
			&summary.Zone,
			&summary.QuantityReceived,
			&summary.QuantitySold,
			&summary.QuantityExpired,
			&summary.Performance,
			&summary.SaleCount,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scanning summary row")
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating summary rows")
	}

	return summaries, nil
}
