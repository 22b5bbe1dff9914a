package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/database/postgres"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	Create(user *domain.User) (*domain.User, error)
	GetByEmployeeID(employeeID string) (*domain.User, error)
	List() ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{conn: conn}
}

const userColumns = "employee_id, name, password_hash, role, zone, area, sub_area, active, created_at, updated_at"

func (r *userRepository) Create(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("employee_id", "name", "password_hash", "role", "zone", "area", "sub_area", "active").
		Values(user.EmployeeID, user.Name, user.PasswordHash, user.Role, user.Zone, user.Area, user.SubArea, user.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building user insert")
	}

	if err := r.conn.QueryRow(query, args...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Wrapf(domain.ErrConflict, "employee %s already registered", user.EmployeeID)
		}
		return nil, errors.Wrap(err, "executing user insert")
	}

	return user, nil
}

func (r *userRepository) GetByEmployeeID(employeeID string) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building user lookup")
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.EmployeeID,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.Zone,
		&user.Area,
		&user.SubArea,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning user")
	}

	return user, nil
}

func (r *userRepository) List() ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		OrderBy("employee_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building user list query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "executing user list query")
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.EmployeeID,
			&user.Name,
			&user.PasswordHash,
			&user.Role,
			&user.Zone,
			&user.Area,
			&user.SubArea,
			&user.Active,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scanning user row")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating user rows")
	}

	return users, nil
}
