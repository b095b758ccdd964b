package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
	"github.com/agencyhub/lead-import/internal/infrastructure/db/models"
)

type columnsPayload struct {
	Usernames   string `json:"usernames"`
	Followers   string `json:"followers"`
	Following   string `json:"following"`
	Posts       string `json:"posts"`
	FullNames   string `json:"full_names"`
	Bios        string `json:"bios"`
	ProfileURLs string `json:"profile_urls"`
}

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) Enqueue(ctx context.Context, columns domain.ColumnSet, rowCount int64) (string, error) {
	payload, err := json.Marshal(columnsPayload{
		Usernames:   columns.Usernames,
		Followers:   columns.Followers,
		Following:   columns.Following,
		Posts:       columns.Posts,
		FullNames:   columns.FullNames,
		Bios:        columns.Bios,
		ProfileURLs: columns.ProfileURLs,
	})
	if err != nil {
		return "", fmt.Errorf("marshal columns payload: %w", err)
	}

	run := models.ImportRun{
		ColumnsPayload: string(payload),
		Status:         "queued",
		RowCount:       rowCount,
	}

	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("create import run: %w", err)
	}

	return run.ID, nil
}

// ClaimNext leases the oldest claimable run: queued, or running with an
// expired lease (a worker died mid-run). SKIP LOCKED keeps concurrent
// workers from claiming the same run.
func (r *ImportRunRepository) ClaimNext(ctx context.Context, leaseDuration time.Duration) (*domain.ImportRun, error) {
	var row models.ImportRun

	result := r.db.WithContext(ctx).Raw(`
UPDATE import_runs
SET status = 'running',
    attempts = attempts + 1,
    started_at = COALESCE(started_at, NOW()),
    heartbeat_at = NOW(),
    lease_expires_at = NOW() + (? * INTERVAL '1 second'),
    updated_at = NOW()
WHERE id = (
    SELECT id
    FROM import_runs
    WHERE status = 'queued'
       OR (status = 'running' AND lease_expires_at < NOW())
    ORDER BY created_at
    FOR UPDATE SKIP LOCKED
    LIMIT 1
)
RETURNING *
`, int64(leaseDuration.Seconds())).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("claim next import run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var payload columnsPayload
	if err := json.Unmarshal([]byte(row.ColumnsPayload), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal columns payload for run %s: %w", row.ID, err)
	}

	return &domain.ImportRun{
		ID: row.ID,
		Columns: domain.ColumnSet{
			Usernames:   payload.Usernames,
			Followers:   payload.Followers,
			Following:   payload.Following,
			Posts:       payload.Posts,
			FullNames:   payload.FullNames,
			Bios:        payload.Bios,
			ProfileURLs: payload.ProfileURLs,
		},
		Status:      row.Status,
		Attempts:    row.Attempts,
		MaxAttempts: row.MaxAttempts,
	}, nil
}

func (r *ImportRunRepository) Heartbeat(ctx context.Context, runID string, leaseDuration time.Duration) error {
	result := r.db.WithContext(ctx).Exec(`
UPDATE import_runs
SET heartbeat_at = NOW(),
    lease_expires_at = NOW() + (? * INTERVAL '1 second'),
    updated_at = NOW()
WHERE id = ? AND status = 'running'
`, int64(leaseDuration.Seconds()), runID)
	if result.Error != nil {
		return fmt.Errorf("heartbeat run %s: %w", runID, result.Error)
	}
	return nil
}

func (r *ImportRunRepository) UpdateProgress(ctx context.Context, runID string, progress domain.RunProgress) error {
	err := r.db.WithContext(ctx).Model(&models.ImportRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"row_count":        progress.RowCount,
			"chunks_total":     progress.ChunksTotal,
			"chunks_completed": progress.ChunksCompleted,
			"percent_complete": progress.PercentComplete,
		}).Error
	if err != nil {
		return fmt.Errorf("update progress for run %s: %w", runID, err)
	}
	return nil
}

func (r *ImportRunRepository) Complete(ctx context.Context, runID string, summary domain.RunSummary) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Model(&models.ImportRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":           "succeeded",
			"row_count":        summary.RowCount,
			"chunks_total":     summary.ChunksTotal,
			"chunks_completed": summary.ChunksCompleted,
			"percent_complete": 100.0,
			"error_message":    nil,
			"finished_at":      now,
		}).Error
	if err != nil {
		return fmt.Errorf("complete run %s: %w", runID, err)
	}
	return nil
}

func (r *ImportRunRepository) Requeue(ctx context.Context, runID string, reason string) error {
	err := r.db.WithContext(ctx).Model(&models.ImportRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":           "queued",
			"error_message":    reason,
			"lease_expires_at": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("requeue run %s: %w", runID, err)
	}
	return nil
}

func (r *ImportRunRepository) Fail(ctx context.Context, runID string, reason string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Model(&models.ImportRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":        "failed",
			"error_message": reason,
			"finished_at":   now,
		}).Error
	if err != nil {
		return fmt.Errorf("fail run %s: %w", runID, err)
	}
	return nil
}

func (r *ImportRunRepository) GetByID(ctx context.Context, runID string) (*domain.RunStatus, error) {
	var row models.ImportRun

	err := r.db.WithContext(ctx).First(&row, "id = ?", runID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("get import run by id: %w", err)
	}

	return &domain.RunStatus{
		ID:              row.ID,
		Status:          row.Status,
		RowCount:        row.RowCount,
		ChunksTotal:     row.ChunksTotal,
		ChunksCompleted: row.ChunksCompleted,
		PercentComplete: row.PercentComplete,
		Attempts:        row.Attempts,
		ErrorMessage:    row.ErrorMessage,
	}, nil
}
