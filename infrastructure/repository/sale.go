package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/database/postgres"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

const salesTable = "sales"

type SaleRepository interface {
	// Upsert atomically creates or updates the row keyed by
	// (agent_id, sale_date, milk_type) and reports which happened. The
	// uniqueness constraint is the only concurrency mechanism: two racing
	// submissions can never produce two rows.
	Upsert(sale *domain.SaleEntry) (domain.SubmitStatus, *domain.SaleEntry, error)
	GetByID(id string) (*domain.SaleEntry, error)
	// FindByScope returns sales matching a pre-authorized scope, newest
	// first. No role logic lives here.
	FindByScope(scope domain.Scope) ([]*domain.SaleEntry, error)
	UpdateAgentRemark(saleID, text string) error
	UpdateExecutiveRemark(saleID, executiveID, text string, at time.Time) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{conn: conn}
}

const saleColumns = `id, agent_id, sale_date, milk_type,
	quantity_received, quantity_sold, quantity_expired, unsold_quantity,
	agent_remarks, executive_remarks, executive_id, executive_remark_time,
	zone, area, sub_area, created_at, updated_at`

func (r *saleRepository) Upsert(sale *domain.SaleEntry) (domain.SubmitStatus, *domain.SaleEntry, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns(
			"id", "agent_id", "sale_date", "milk_type",
			"quantity_received", "quantity_sold", "quantity_expired", "unsold_quantity",
			"agent_remarks", "zone", "area", "sub_area",
		).
		Values(
			sale.ID,
			sale.AgentID,
			sale.Date.Format(time.DateOnly),
			sale.MilkType,
			sale.QuantityReceived,
			sale.QuantitySold,
			sale.QuantityExpired,
			sale.UnsoldQuantity,
			sale.AgentRemarks,
			sale.Zone,
			sale.Area,
			sale.SubArea,
		).
		Suffix(`
			ON CONFLICT (agent_id, sale_date, milk_type) DO UPDATE SET
				quantity_received = EXCLUDED.quantity_received,
				quantity_sold = EXCLUDED.quantity_sold,
				quantity_expired = EXCLUDED.quantity_expired,
				unsold_quantity = EXCLUDED.unsold_quantity,
				agent_remarks = EXCLUDED.agent_remarks,
				updated_at = NOW()
			RETURNING ` + saleColumns + `, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "building sale upsert query")
	}

	row := r.conn.QueryRow(query, args...)

	stored := &domain.SaleEntry{}
	var inserted bool
	if err := scanSale(row, stored, &inserted); err != nil {
		if isUniqueViolation(err) {
			return "", nil, errors.Wrap(domain.ErrConflict, "sale upsert hit an unexpected unique violation")
		}
		return "", nil, errors.Wrap(err, "executing sale upsert")
	}

	if inserted {
		return domain.StatusCreated, stored, nil
	}
	return domain.StatusUpdated, stored, nil
}

func (r *saleRepository) GetByID(id string) (*domain.SaleEntry, error) {
	query, args, err := squirrel.
		Select(saleColumns).
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building sale lookup query")
	}

	sale := &domain.SaleEntry{}
	if err := scanSale(r.conn.QueryRow(query, args...), sale, nil); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning sale")
	}

	return sale, nil
}

func (r *saleRepository) FindByScope(scope domain.Scope) ([]*domain.SaleEntry, error) {
	builder := squirrel.
		Select(saleColumns).
		From(salesTable).
		OrderBy("sale_date DESC", "agent_id ASC", "milk_type ASC").
		PlaceholderFormat(squirrel.Dollar)

	if scope.AgentID != "" {
		builder = builder.Where(squirrel.Eq{"agent_id": scope.AgentID})
	}
	if scope.Zone != nil {
		builder = builder.Where(squirrel.Eq{"zone": *scope.Zone})
	}
	if scope.Area != nil {
		builder = builder.Where(squirrel.Eq{"area": *scope.Area})
	}
	if scope.SubArea != nil {
		builder = builder.Where(squirrel.Eq{"sub_area": *scope.SubArea})
	}
	if scope.Date != nil {
		builder = builder.Where(squirrel.Eq{"sale_date": scope.Date.Format(time.DateOnly)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building sale scope query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "executing sale scope query")
	}
	defer rows.Close()

	sales := make([]*domain.SaleEntry, 0)
	for rows.Next() {
		sale := &domain.SaleEntry{}
		if err := scanSale(rows, sale, nil); err != nil {
			return nil, errors.Wrap(err, "scanning sale row")
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating sale rows")
	}

	return sales, nil
}

func (r *saleRepository) UpdateAgentRemark(saleID, text string) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("agent_remarks", text).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building agent remark update")
	}

	return r.execExpectingRow(query, args)
}

func (r *saleRepository) UpdateExecutiveRemark(saleID, executiveID, text string, at time.Time) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("executive_remarks", text).
		Set("executive_id", executiveID).
		Set("executive_remark_time", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building executive remark update")
	}

	return r.execExpectingRow(query, args)
}

func (r *saleRepository) execExpectingRow(query string, args []interface{}) error {
	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "executing sale update")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading affected rows")
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSale(s scanner, sale *domain.SaleEntry, inserted *bool) error {
	dest := []interface{}{
		&sale.ID,
		&sale.AgentID,
		&sale.Date,
		&sale.MilkType,
		&sale.QuantityReceived,
		&sale.QuantitySold,
		&sale.QuantityExpired,
		&sale.UnsoldQuantity,
		&sale.AgentRemarks,
		&sale.ExecutiveRemarks,
		&sale.ExecutiveID,
		&sale.ExecutiveRemarkTime,
		&sale.Zone,
		&sale.Area,
		&sale.SubArea,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	}
	if inserted != nil {
		dest = append(dest, inserted)
	}

	return s.Scan(dest...)
}
