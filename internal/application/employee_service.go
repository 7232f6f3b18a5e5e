package application

import (
	"context"
	"errors"
	"expvar"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
	repo "github.com/oksasatya/go-employee-directory/internal/domain/repository"
	"github.com/oksasatya/go-employee-directory/pkg/helpers"
)

var (
	employeesCreated = expvar.NewInt("employees_created")
	employeesDeleted = expvar.NewInt("employees_deleted")
)

type Service struct {
	Employees repo.EmployeeRepository
	Companies repo.CompanyRepository
	Events    EventPublisher
	Logger    *logrus.Logger

	hash func(string) (string, error)
	now  func() time.Time
}

func NewService(employees repo.EmployeeRepository, companies repo.CompanyRepository, events EventPublisher, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		Employees: employees,
		Companies: companies,
		Events:    events,
		Logger:    logger,
		hash:      helpers.HashPassword,
		now:       time.Now,
	}
}

type CreateEmployeeInput struct {
	Name     string
	Email    string
	Company  string
	Role     string
	Password string
}

// CreateEmployee checks the company and email before inserting; the unique
// and foreign key constraints still decide concurrent races.
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*entity.Employee, error) {
	company := strings.ToLower(in.Company)
	email := normalizeEmail(in.Email)

	if _, err := s.Companies.GetByName(ctx, company); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.Logger.WithError(err).WithField("company", company).Error("company lookup failed")
		return nil, err
	}

	existing, err := s.Employees.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		s.Logger.WithError(err).Error("email lookup failed")
		return nil, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	e := &entity.Employee{
		Name:         in.Name,
		Email:        email,
		Company:      company,
		Role:         in.Role,
		PasswordHash: hash,
	}
	if err := s.Employees.Create(ctx, e); err != nil {
		switch {
		case errors.Is(err, repo.ErrUniqueViolation):
			return nil, ErrEmailTaken
		case errors.Is(err, repo.ErrForeignKeyViolation):
			return nil, ErrCompanyNotFound
		}
		s.Logger.WithError(err).Error("insert employee failed")
		return nil, err
	}

	employeesCreated.Add(1)
	s.publish(ctx, newEmployeeEvent(EventEmployeeCreated, e, s.now()))
	return e, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	list, err := s.Employees.List(ctx)
	if err != nil {
		s.Logger.WithError(err).Error("list employees failed")
		return nil, err
	}
	return list, nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := s.Employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.Logger.WithError(err).WithField("employee_id", id).Error("get employee failed")
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	deleted, err := s.Employees.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		s.Logger.WithError(err).WithField("employee_id", id).Error("delete employee failed")
		return err
	}

	employeesDeleted.Add(1)
	s.publish(ctx, newEmployeeEvent(EventEmployeeDeleted, deleted, s.now()))
	return nil
}

// normalizeEmail lowercases the domain part. The local part is kept as
// submitted since mailboxes may be case sensitive.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// publish is best effort, a broker outage never fails the request.
func (s *Service) publish(ctx context.Context, ev EmployeeEvent) {
	if s.Events == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(c, ev); err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"event":       ev.Type,
			"employee_id": ev.EmployeeID,
		}).Warn("publish employee event failed")
	}
}
