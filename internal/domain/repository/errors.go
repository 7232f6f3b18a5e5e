package repository

import "errors"

// Storage-level errors returned by repository implementations.
var (
	ErrNotFound            = errors.New("repository: not found")
	ErrUniqueViolation     = errors.New("repository: unique violation")
	ErrForeignKeyViolation = errors.New("repository: foreign key violation")
)
