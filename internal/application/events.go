package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-employee-directory/internal/domain/entity"
)

const (
	EventEmployeeCreated = "employee.created"
	EventEmployeeDeleted = "employee.deleted"
)

// EventPublisher is implemented by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// EmployeeEvent is the message body published on directory changes.
// It carries no credential material.
type EmployeeEvent struct {
	Type       string    `json:"type"`
	EmployeeID int64     `json:"employee_id"`
	Email      string    `json:"email,omitempty"`
	Company    string    `json:"company,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEmployeeEvent(typ string, e *entity.Employee, now time.Time) EmployeeEvent {
	return EmployeeEvent{
		Type:       typ,
		EmployeeID: e.ID,
		Email:      e.Email,
		Company:    e.Company,
		OccurredAt: now.UTC(),
	}
}
