package repository

import (
	"context"

	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
)

// CompanyRepository is read-only; companies are managed outside the HTTP API.
type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Company, error)
}
