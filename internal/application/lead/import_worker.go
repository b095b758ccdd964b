package lead

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type importWorkerRunRepo interface {
	ClaimNext(ctx context.Context, leaseDuration time.Duration) (*domain.ImportRun, error)
	Heartbeat(ctx context.Context, runID string, leaseDuration time.Duration) error
	UpdateProgress(ctx context.Context, runID string, progress domain.RunProgress) error
	Complete(ctx context.Context, runID string, summary domain.RunSummary) error
	Requeue(ctx context.Context, runID string, reason string) error
	Fail(ctx context.Context, runID string, reason string) error
}

type ImportWorkerConfig struct {
	Workers       int
	ChunkSize     int
	Table         string
	PollInterval  time.Duration
	LeaseDuration time.Duration
}

// ImportWorker claims queued runs and drives them through the pipeline:
// assemble, validate, then chunked submission with progress persisted after
// every chunk.
type ImportWorker struct {
	repo     importWorkerRunRepo
	inserter domain.BulkInserter
	notifier domain.Notifier
	log      logrus.FieldLogger
	cfg      ImportWorkerConfig

	once sync.Once
}

func NewImportWorker(repo importWorkerRunRepo, inserter domain.BulkInserter, notifier domain.Notifier, log logrus.FieldLogger, cfg ImportWorkerConfig) *ImportWorker {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Table == "" {
		cfg.Table = "leads"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.LeaseDuration <= 0 {
		cfg.LeaseDuration = 60 * time.Second
	}

	return &ImportWorker{
		repo:     repo,
		inserter: inserter,
		notifier: notifier,
		log:      log,
		cfg:      cfg,
	}
}

func (w *ImportWorker) Start(ctx context.Context) {
	w.once.Do(func() {
		for i := 0; i < w.cfg.Workers; i++ {
			go w.workerLoop(ctx)
		}
	})
}

func (w *ImportWorker) workerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		run, err := w.repo.ClaimNext(ctx, w.cfg.LeaseDuration)
		if err != nil {
			w.log.WithError(err).Error("claim next import run failed")
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		if run == nil {
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		if err := w.ProcessRun(ctx, *run); err != nil {
			w.log.WithError(err).WithField("run_id", run.ID).Error("process import run failed")
		}
	}
}

// ProcessRun executes one claimed run to a terminal state. A deterministic
// pipeline failure (no usernames, invalid rows) fails the run outright;
// a chunk submission failure is retried up to the run's attempt budget.
func (w *ImportWorker) ProcessRun(ctx context.Context, run domain.ImportRun) error {
	rows := AssembleRows(run.Columns)
	if len(rows) == 0 {
		return w.failPermanently(ctx, run, ErrNoUsernames)
	}
	if errs := Validate(rows); len(errs) > 0 {
		return w.failPermanently(ctx, run, &RowValidationError{Errors: errs})
	}

	submitter := NewSubmitter(w.inserter, w.cfg.Table, w.cfg.ChunkSize)

	onProgress := func(p Progress) {
		progress := domain.RunProgress{
			RowCount:        int64(len(rows)),
			ChunksTotal:     p.ChunksTotal,
			ChunksCompleted: p.ChunksCompleted,
			PercentComplete: p.PercentComplete,
		}
		if err := w.repo.UpdateProgress(ctx, run.ID, progress); err != nil {
			w.log.WithError(err).WithField("run_id", run.ID).Warn("update run progress failed")
		}
		if err := w.repo.Heartbeat(ctx, run.ID, w.cfg.LeaseDuration); err != nil {
			w.log.WithError(err).WithField("run_id", run.ID).Warn("heartbeat failed")
		}
	}

	if err := submitter.Submit(ctx, rows, onProgress); err != nil {
		if ctx.Err() != nil {
			// Shutdown mid-run: leave the run leased; lease expiry makes it
			// claimable again.
			return err
		}

		var chunkErr *ChunkError
		if errors.As(err, &chunkErr) {
			w.notifier.Notify(domain.NotifyError, fmt.Sprintf("import failed at rows %d-%d", chunkErr.FirstRow, chunkErr.LastRow))
		}
		return w.onProcessingError(ctx, run, fmt.Errorf("submit chunks: %w", err))
	}

	progress := submitter.Progress()
	if err := w.repo.Complete(ctx, run.ID, domain.RunSummary{
		RowCount:        int64(len(rows)),
		ChunksTotal:     progress.ChunksTotal,
		ChunksCompleted: progress.ChunksCompleted,
	}); err != nil {
		return w.onProcessingError(ctx, run, fmt.Errorf("complete run: %w", err))
	}

	w.notifier.Notify(domain.NotifySuccess, fmt.Sprintf("imported %d leads", len(rows)))
	w.log.WithFields(logrus.Fields{
		"run_id": run.ID,
		"rows":   len(rows),
		"chunks": progress.ChunksTotal,
	}).Info("import run completed")
	return nil
}

func (w *ImportWorker) onProcessingError(ctx context.Context, run domain.ImportRun, err error) error {
	reason := truncateReason(err.Error())
	if run.Attempts < run.MaxAttempts {
		if requeueErr := w.repo.Requeue(ctx, run.ID, reason); requeueErr != nil {
			return fmt.Errorf("%v; requeue failed: %w", err, requeueErr)
		}
		return err
	}

	if failErr := w.repo.Fail(ctx, run.ID, reason); failErr != nil {
		return fmt.Errorf("%v; fail update failed: %w", err, failErr)
	}
	return err
}

func (w *ImportWorker) failPermanently(ctx context.Context, run domain.ImportRun, cause error) error {
	w.notifier.Notify(domain.NotifyError, cause.Error())
	if failErr := w.repo.Fail(ctx, run.ID, truncateReason(cause.Error())); failErr != nil {
		return fmt.Errorf("%v; fail update failed: %w", cause, failErr)
	}
	return cause
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func truncateReason(reason string) string {
	const maxLen = 1000
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxLen {
		return reason
	}
	return reason[:maxLen]
}
