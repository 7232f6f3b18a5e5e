package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
	"github.com/oksasatya/go-employee-directory/internal/domain/repository"
)

const employeeColumns = `id, name, email, company, role, password_hash`

type EmployeeRepository struct {
	db Queryer
}

func NewEmployeeRepository(db Queryer) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO employees (name, email, company, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.Name, e.Email, e.Company, e.Role, e.PasswordHash)

	return translatePgError(row.Scan(&e.ID))
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	out := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return e, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (*entity.Employee, error) {
	e := &entity.Employee{}
	err := r.db.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING id, email, company`, id).
		Scan(&e.ID, &e.Email, &e.Company)
	if err != nil {
		return nil, translatePgError(err)
	}
	return e, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	e := &entity.Employee{}
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Company, &e.Role, &e.PasswordHash); err != nil {
		return nil, err
	}
	return e, nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
