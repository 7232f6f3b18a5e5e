package application

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company does not exist")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("employee with this email already exists")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
)
