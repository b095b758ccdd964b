package lead_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/agencyhub/lead-import/internal/application/lead"
	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type fakeLeadQueryRepo struct {
	lead      *domain.Lead
	returnErr error
}

func (f *fakeLeadQueryRepo) GetByUsername(ctx context.Context, username string) (*domain.Lead, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	return f.lead, nil
}

func TestGetLeadByUsernameSuccess(t *testing.T) {
	t.Parallel()

	followers := int64(100)
	repo := &fakeLeadQueryRepo{lead: &domain.Lead{
		Username:       "alice",
		FollowersCount: &followers,
	}}
	uc := app.NewGetLeadByUsername(repo)

	out, err := uc.Execute(context.Background(), app.GetLeadByUsernameInput{Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Username != "alice" {
		t.Fatalf("expected alice, got %q", out.Username)
	}
	if out.FollowersCount == nil || *out.FollowersCount != 100 {
		t.Fatalf("expected followers 100, got %v", out.FollowersCount)
	}
	if out.FullName != nil {
		t.Fatalf("expected nil full name, got %v", *out.FullName)
	}
}

func TestGetLeadByUsernameNotFound(t *testing.T) {
	t.Parallel()

	uc := app.NewGetLeadByUsername(&fakeLeadQueryRepo{returnErr: domain.ErrLeadNotFound})

	_, err := uc.Execute(context.Background(), app.GetLeadByUsernameInput{Username: "nobody"})
	if !errors.Is(err, app.ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestGetLeadByUsernameBlankUsername(t *testing.T) {
	t.Parallel()

	repo := &fakeLeadQueryRepo{lead: &domain.Lead{Username: "alice"}}
	uc := app.NewGetLeadByUsername(repo)

	_, err := uc.Execute(context.Background(), app.GetLeadByUsernameInput{Username: "   "})
	if !errors.Is(err, app.ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}
