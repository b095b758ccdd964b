package lead

import "errors"

var (
	ErrEmptyUsername = errors.New("empty username")
	ErrRunNotFound   = errors.New("import run not found")
	ErrLeadNotFound  = errors.New("lead not found")
)
