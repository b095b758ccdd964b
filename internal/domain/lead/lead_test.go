package lead_test

import (
	"errors"
	"testing"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

func TestLeadValidate(t *testing.T) {
	t.Parallel()

	if err := (domain.Lead{Username: "alice"}).Validate(); err != nil {
		t.Fatalf("expected valid lead, got %v", err)
	}
}

func TestLeadValidateEmptyUsername(t *testing.T) {
	t.Parallel()

	err := (domain.Lead{Username: "   "}).Validate()
	if !errors.Is(err, domain.ErrEmptyUsername) {
		t.Fatalf("expected ErrEmptyUsername, got %v", err)
	}
}
