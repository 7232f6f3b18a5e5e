package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/oksasatya/go-employee-directory/internal/domain/repository"
)

func TestCompanyRepository_GetByName(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM companies`)).
		WithArgs("acme").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "acme"))

	c, err := repo.GetByName(context.Background(), "acme")
	if err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}
	if c.ID != 1 || c.Name != "acme" {
		t.Fatalf("unexpected company: %+v", c)
	}
}

func TestCompanyRepository_GetByName_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM companies`)).
		WithArgs("globex").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	if _, err := repo.GetByName(context.Background(), "globex"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
