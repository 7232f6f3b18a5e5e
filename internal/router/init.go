package router

import (
	"github.com/oksasatya/go-employee-directory/internal/application"
	"github.com/oksasatya/go-employee-directory/internal/container"
	pginfra "github.com/oksasatya/go-employee-directory/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-employee-directory/internal/interface/http"
	"github.com/oksasatya/go-employee-directory/internal/router/modules"
)

type EmployeeModuleDeps struct {
	Service *application.Service
	Handler *handlers.EmployeeHandler
}

func buildEmployeeDeps() EmployeeModuleDeps {
	pool := container.GetPGPool()

	// a nil *RabbitPublisher must not become a non-nil interface
	var events application.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}

	service := application.NewService(
		pginfra.NewEmployeeRepository(pool),
		pginfra.NewCompanyRepository(pool),
		events,
		container.GetLogger(),
	)

	handler := handlers.NewEmployeeHandler(service, container.GetLogger())

	return EmployeeModuleDeps{
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool())))

	employeeDeps := buildEmployeeDeps()
	r.Add(modules.NewEmployeeModule(employeeDeps.Handler, modules.RateLimitOptions{
		Redis:        container.GetRedis(),
		PerMinute:    cfg.RateLimitPerMinute,
		AllowPrivate: cfg.RateLimitAllowPrivate,
	}))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetRedis()))
	}
}
