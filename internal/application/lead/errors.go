package lead

import (
	"errors"
	"fmt"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

var (
	ErrNoUsernames  = errors.New("at least one username is required")
	ErrEnqueueRun   = errors.New("failed to enqueue import run")
	ErrInvalidRunID = errors.New("invalid run id")
	ErrRunNotFound  = errors.New("import run not found")
	ErrLeadNotFound = errors.New("lead not found")
	ErrGetRun       = errors.New("failed to get import run")
	ErrGetLead      = errors.New("failed to get lead")
)

// RowValidationError carries the per-row problems that blocked an import.
type RowValidationError struct {
	Errors []domain.ValidationError
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("%d rows failed validation", len(e.Errors))
}
