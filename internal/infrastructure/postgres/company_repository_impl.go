package postgres

import (
	"context"

	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
	"github.com/oksasatya/go-employee-directory/internal/domain/repository"
)

type CompanyRepository struct {
	db Queryer
}

func NewCompanyRepository(db Queryer) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	c := &entity.Company{}
	row := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM companies
		WHERE name = $1
	`, name)
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, translatePgError(err)
	}
	return c, nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
