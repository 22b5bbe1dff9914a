package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/database/postgres"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

const executiveRemarksTable = "executive_remarks"

type ExecutiveRemarkRepository interface {
	// Upsert atomically creates or replaces the remark keyed by
	// (executive_id, agent_id, remark_date).
	Upsert(remark *domain.ExecutiveRemark) (domain.SubmitStatus, *domain.ExecutiveRemark, error)
	FindByScope(scope domain.Scope) ([]*domain.ExecutiveRemark, error)
}

type executiveRemarkRepository struct {
	conn *postgres.Connection
}

func NewExecutiveRemarkRepository(conn *postgres.Connection) ExecutiveRemarkRepository {
	return &executiveRemarkRepository{conn: conn}
}

const remarkColumns = `id, executive_id, agent_id, remark_date, content,
	zone, area, sub_area, created_at, updated_at`

func (r *executiveRemarkRepository) Upsert(remark *domain.ExecutiveRemark) (domain.SubmitStatus, *domain.ExecutiveRemark, error) {
	query, args, err := squirrel.
		Insert(executiveRemarksTable).
		Columns("id", "executive_id", "agent_id", "remark_date", "content", "zone", "area", "sub_area").
		Values(
			remark.ID,
			remark.ExecutiveID,
			remark.AgentID,
			remark.Date.Format(time.DateOnly),
			remark.Content,
			remark.Zone,
			remark.Area,
			remark.SubArea,
		).
		Suffix(`
			ON CONFLICT (executive_id, agent_id, remark_date) DO UPDATE SET
				content = EXCLUDED.content,
				updated_at = NOW()
			RETURNING ` + remarkColumns + `, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "building remark upsert query")
	}

	stored := &domain.ExecutiveRemark{}
	var inserted bool
	err = r.conn.QueryRow(query, args...).Scan(
		&stored.ID,
		&stored.ExecutiveID,
		&stored.AgentID,
		&stored.Date,
		&stored.Content,
		&stored.Zone,
		&stored.Area,
		&stored.SubArea,
		&stored.CreatedAt,
		&stored.UpdatedAt,
		&inserted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", nil, errors.Wrap(domain.ErrConflict, "remark upsert hit an unexpected unique violation")
		}
		return "", nil, errors.Wrap(err, "executing remark upsert")
	}

	if inserted {
		return domain.StatusCreated, stored, nil
	}
	return domain.StatusUpdated, stored, nil
}

func (r *executiveRemarkRepository) FindByScope(scope domain.Scope) ([]*domain.ExecutiveRemark, error) {
	builder := squirrel.
		Select(remarkColumns).
		From(executiveRemarksTable).
		OrderBy("remark_date DESC", "agent_id ASC").
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
		builder = builder.Where(squirrel.Eq{"remark_date": scope.Date.Format(time.DateOnly)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building remark scope query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "executing remark scope query")
	}
	defer rows.Close()

	remarks := make([]*domain.ExecutiveRemark, 0)
	for rows.Next() {
		remark := &domain.ExecutiveRemark{}
		err := rows.Scan(
			&remark.ID,
			&remark.ExecutiveID,
			&remark.AgentID,
			&remark.Date,
			&remark.Content,
			&remark.Zone,
			&remark.Area,
			&remark.SubArea,
			&remark.CreatedAt,
			&remark.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scanning remark row")
		}
		remarks = append(remarks, remark)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating remark rows")
	}

	return remarks, nil
}
