package lead

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type GetLeadByUsernameInput struct {
	Username string
}

type GetLeadByUsernameOutput struct {
	Username       string  `json:"username"`
	FollowersCount *int64  `json:"followers_count"`
	FollowingCount *int64  `json:"following_count"`
	PostsCount     *int64  `json:"posts_count"`
	FullName       *string `json:"full_name"`
	Bio            *string `json:"bio"`
	ProfileURL     *string `json:"profile_url"`
}

type GetLeadByUsername interface {
	Execute(ctx context.Context, in GetLeadByUsernameInput) (GetLeadByUsernameOutput, error)
}

type getLeadByUsername struct {
	repo domain.LeadQueryRepository
}

func NewGetLeadByUsername(repo domain.LeadQueryRepository) GetLeadByUsername {
	return &getLeadByUsername{repo: repo}
}

func (uc *getLeadByUsername) Execute(ctx context.Context, in GetLeadByUsernameInput) (GetLeadByUsernameOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return GetLeadByUsernameOutput{}, ErrLeadNotFound
	}

	row, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			return GetLeadByUsernameOutput{}, ErrLeadNotFound
		}
		return GetLeadByUsernameOutput{}, fmt.Errorf("%w: %v", ErrGetLead, err)
	}

	return GetLeadByUsernameOutput{
		Username:       row.Username,
		FollowersCount: row.FollowersCount,
		FollowingCount: row.FollowingCount,
		PostsCount:     row.PostsCount,
		FullName:       row.FullName,
		Bio:            row.Bio,
		ProfileURL:     row.ProfileURL,
	}, nil
}
