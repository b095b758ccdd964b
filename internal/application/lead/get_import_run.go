package lead

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type GetImportRunInput struct {
	ID string
}

type GetImportRunOutput struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	RowCount        int64   `json:"row_count"`
	ChunksTotal     int     `json:"chunks_total"`
	ChunksCompleted int     `json:"chunks_completed"`
	PercentComplete float64 `json:"percent_complete"`
	Attempts        int     `json:"attempts"`
	ErrorMessage    *string `json:"error_message,omitempty"`
}

type GetImportRun interface {
	Execute(ctx context.Context, in GetImportRunInput) (GetImportRunOutput, error)
}

type getImportRun struct {
	repo domain.RunQueryRepository
}

func NewGetImportRun(repo domain.RunQueryRepository) GetImportRun {
	return &getImportRun{repo: repo}
}

func (uc *getImportRun) Execute(ctx context.Context, in GetImportRunInput) (GetImportRunOutput, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return GetImportRunOutput{}, ErrInvalidRunID
	}

	run, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			return GetImportRunOutput{}, ErrRunNotFound
		}
		return GetImportRunOutput{}, fmt.Errorf("%w: %v", ErrGetRun, err)
	}

	return GetImportRunOutput{
		ID:              run.ID,
		Status:          run.Status,
		RowCount:        run.RowCount,
		ChunksTotal:     run.ChunksTotal,
		ChunksCompleted: run.ChunksCompleted,
		PercentComplete: run.PercentComplete,
		Attempts:        run.Attempts,
		ErrorMessage:    run.ErrorMessage,
	}, nil
}
