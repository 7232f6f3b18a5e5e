package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-employee-directory/internal/interface/http"
	"github.com/oksasatya/go-employee-directory/internal/interface/middleware"
)

// RateLimitOptions configures the per-IP limiter on employee routes.
// A nil Redis disables limiting.
type RateLimitOptions struct {
	Redis        *redis.Client
	PerMinute    int
	AllowPrivate bool
}

// EmployeeModule wires the employee directory routes
// POST /employees, GET /employees, GET /employees/:id, DELETE /employees/:id
type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
	Limits  RateLimitOptions
}

func NewEmployeeModule(h *handlers.EmployeeHandler, limits RateLimitOptions) *EmployeeModule {
	return &EmployeeModule{Handler: h, Limits: limits}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	var allow middleware.AllowFunc
	if m.Limits.AllowPrivate {
		allow = middleware.AllowPrivateIP()
	}
	perIP := middleware.RateLimit(m.Limits.Redis, m.Limits.PerMinute, time.Minute, middleware.KeyByIP(), allow)
	// writes get a tighter per-path budget on top of the per-IP one
	writeLimiter := middleware.RateLimit(m.Limits.Redis, writeBudget(m.Limits.PerMinute), time.Minute, middleware.KeyByIPAndPath(), allow)

	g := rg.Group("/employees")
	g.Use(perIP)
	{
		g.POST("", writeLimiter, m.Handler.Create)
		g.GET("", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}

func writeBudget(perMinute int) int {
	if perMinute <= 0 {
		return 0
	}
	if b := perMinute / 4; b > 0 {
		return b
	}
	return 1
}
