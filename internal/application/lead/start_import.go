package lead

import (
	"context"
	"fmt"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type StartLeadImportInput struct {
	Columns domain.ColumnSet
}

type StartLeadImportOutput struct {
	RunID    string `json:"run_id"`
	Status   string `json:"status"`
	RowCount int64  `json:"row_count"`
}

type StartLeadImport interface {
	Execute(ctx context.Context, in StartLeadImportInput) (StartLeadImportOutput, error)
}

type runEnqueuer interface {
	Enqueue(ctx context.Context, columns domain.ColumnSet, rowCount int64) (string, error)
}

type startLeadImport struct {
	runRepo  runEnqueuer
	notifier domain.Notifier
}

func NewStartLeadImport(runRepo runEnqueuer, notifier domain.Notifier) StartLeadImport {
	return &startLeadImport{runRepo: runRepo, notifier: notifier}
}

// Execute checks the whole-batch precondition and per-row validity before
// anything is enqueued; a blocking problem means zero insert calls are ever
// made for this input.
func (uc *startLeadImport) Execute(ctx context.Context, in StartLeadImportInput) (StartLeadImportOutput, error) {
	if len(ParseColumn(in.Columns.Usernames)) == 0 {
		uc.notifier.Notify(domain.NotifyError, "add at least one username")
		return StartLeadImportOutput{}, ErrNoUsernames
	}

	rows := AssembleRows(in.Columns)
	if errs := Validate(rows); len(errs) > 0 {
		uc.notifier.Notify(domain.NotifyError, fmt.Sprintf("%d rows failed validation", len(errs)))
		return StartLeadImportOutput{}, &RowValidationError{Errors: errs}
	}

	runID, err := uc.runRepo.Enqueue(ctx, in.Columns, int64(len(rows)))
	if err != nil {
		return StartLeadImportOutput{}, fmt.Errorf("%w: %v", ErrEnqueueRun, err)
	}

	return StartLeadImportOutput{
		RunID:    runID,
		Status:   "queued",
		RowCount: int64(len(rows)),
	}, nil
}
