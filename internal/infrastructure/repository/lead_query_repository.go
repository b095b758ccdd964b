package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
	"github.com/agencyhub/lead-import/internal/infrastructure/db/models"
)

type LeadQueryRepository struct {
	db *gorm.DB
}

func NewLeadQueryRepository(db *gorm.DB) *LeadQueryRepository {
	return &LeadQueryRepository{db: db}
}

// GetByUsername returns the most recently imported lead for the username.
// Re-running an import may insert the same username again; the newest row
// wins for reads.
func (r *LeadQueryRepository) GetByUsername(ctx context.Context, username string) (*domain.Lead, error) {
	var row models.Lead

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("get lead by username: %w", err)
	}

	return &domain.Lead{
		Username:       row.Username,
		FollowersCount: row.FollowersCount,
		FollowingCount: row.FollowingCount,
		PostsCount:     row.PostsCount,
		FullName:       row.FullName,
		Bio:            row.Bio,
		ProfileURL:     row.ProfileURL,
	}, nil
}
