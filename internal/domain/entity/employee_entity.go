package entity

// Employee is the aggregate root for the directory domain
// PasswordHash holds a bcrypt hash and must never leave the service.
type Employee struct {
	ID           int64
	Name         string
	Email        string
	Company      string
	Role         string
	PasswordHash string
}
