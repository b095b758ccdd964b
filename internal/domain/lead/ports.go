package lead

import "context"

// BulkInserter is the record-insert collaborator. A call persists the whole
// batch or reports one error for all of it; no per-row granularity.
type BulkInserter interface {
	InsertMany(ctx context.Context, table string, leads []Lead) error
}

// NotificationKind selects the notification surface's event type.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notifier reports terminal outcomes and blocking conditions to the operator.
type Notifier interface {
	Notify(kind NotificationKind, message string)
}

// ImportRunRepository enqueues runs for background processing.
type ImportRunRepository interface {
	Enqueue(ctx context.Context, columns ColumnSet, rowCount int64) (string, error)
}

// RunQueryRepository reads back a run's status for the API.
type RunQueryRepository interface {
	GetByID(ctx context.Context, runID string) (*RunStatus, error)
}

// LeadQueryRepository reads back a single imported lead.
type LeadQueryRepository interface {
	GetByUsername(ctx context.Context, username string) (*Lead, error)
}
