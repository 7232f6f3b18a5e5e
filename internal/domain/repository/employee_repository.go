package repository

import (
	"context"

	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee-related database operations.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	List(ctx context.Context) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	// Delete removes the row and returns its id, email and company.
	Delete(ctx context.Context, id int64) (*entity.Employee, error)
}
