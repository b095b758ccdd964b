package lead

import (
	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

// Validate checks the assembled rows for structural problems. The returned
// slice is empty when submission may proceed. The zero-usernames precondition
// is the caller's responsibility (it is a whole-batch failure, not a row
// error).
func Validate(rows []domain.Lead) []domain.ValidationError {
	var errs []domain.ValidationError
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			errs = append(errs, domain.ValidationError{
				RowIndex: i,
				Field:    "username",
				Message:  err.Error(),
			})
		}
	}
	return errs
}
