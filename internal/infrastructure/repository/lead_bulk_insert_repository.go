package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

var leadColumns = []string{
	"username",
	"followers_count",
	"following_count",
	"posts_count",
	"full_name",
	"bio",
	"profile_url",
}

// LeadBulkInsertRepository persists one chunk per call. COPY is a single
// statement: either every row in the batch lands or none do, and the caller
// gets one error for the whole batch.
type LeadBulkInsertRepository struct {
	pool *pgxpool.Pool
}

func NewLeadBulkInsertRepository(pool *pgxpool.Pool) *LeadBulkInsertRepository {
	return &LeadBulkInsertRepository{pool: pool}
}

func (r *LeadBulkInsertRepository) InsertMany(ctx context.Context, table string, leads []domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []any{
			l.Username,
			l.FollowersCount,
			l.FollowingCount,
			l.PostsCount,
			l.FullName,
			l.Bio,
			l.ProfileURL,
		})
	}

	if _, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{table},
		leadColumns,
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy %d leads into %s: %w", len(leads), table, err)
	}

	return nil
}
