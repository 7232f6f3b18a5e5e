package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-employee-directory/internal/application"
	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
	"github.com/oksasatya/go-employee-directory/pkg/response"
	"github.com/oksasatya/go-employee-directory/pkg/validation"
)

// EmployeeService is the use case surface the handler depends on.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, in application.CreateEmployeeInput) (*entity.Employee, error)
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type EmployeeHandler struct {
	Svc    EmployeeService
	Logger *logrus.Logger
}

func NewEmployeeHandler(svc EmployeeService, logger *logrus.Logger) *EmployeeHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &EmployeeHandler{Svc: svc, Logger: logger}
}

type createEmployeeRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Company  string `form:"company" binding:"required"`
	Role     string `form:"role" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// EmployeeResponse is the public record; the password hash has no field here.
type EmployeeResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

func toEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{ID: e.ID, Name: e.Name, Email: e.Email, Company: e.Company, Role: e.Role}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.AbortWithError(c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	e, err := h.Svc.CreateEmployee(c.Request.Context(), application.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.Svc.ListEmployees(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}
	e, err := h.Svc.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func employeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.AbortWithError(c, http.StatusUnprocessableEntity, "invalid employee id", map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

// fail maps application errors onto HTTP statuses. Unknown errors are 500
// and never expose their text.
func (h *EmployeeHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrCompanyNotFound), errors.Is(err, application.ErrEmployeeNotFound):
		response.AbortWithError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrPasswordTooLong):
		response.AbortWithError(c, http.StatusUnprocessableEntity, "invalid payload", map[string]string{"password": err.Error()})
	default:
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		}).Error("employee request failed")
		response.AbortWithError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
