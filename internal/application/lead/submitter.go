package lead

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

// DefaultChunkSize bounds how many rows go into one insert call.
const DefaultChunkSize = 40

// Progress is a snapshot of one submission run.
type Progress struct {
	IsProcessing    bool
	ChunksTotal     int
	ChunksCompleted int
	PercentComplete float64
}

// ProgressFunc observes progress after each successfully submitted chunk.
type ProgressFunc func(Progress)

// ChunkError reports the first failing chunk. Earlier chunks stay inserted;
// the row range (1-based, inclusive) tells the operator which source rows to
// retry.
type ChunkError struct {
	ChunkIndex int
	FirstRow   int
	LastRow    int
	Err        error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d (rows %d-%d): %v", e.ChunkIndex+1, e.FirstRow, e.LastRow, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// Submitter partitions a validated row set into fixed-size chunks and
// submits them strictly sequentially. The first failure aborts the run;
// chunks already inserted are not rolled back.
type Submitter struct {
	inserter  domain.BulkInserter
	table     string
	chunkSize int

	mu       sync.Mutex
	progress Progress
}

func NewSubmitter(inserter domain.BulkInserter, table string, chunkSize int) *Submitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Submitter{
		inserter:  inserter,
		table:     table,
		chunkSize: chunkSize,
	}
}

// Progress returns a snapshot of the current run's progress. Safe to call
// from other goroutines while Submit is running.
func (s *Submitter) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Submit runs one submission. Cancelling the context between chunks stops
// the run without submitting further chunks.
func (s *Submitter) Submit(ctx context.Context, rows []domain.Lead, onProgress ProgressFunc) error {
	if len(rows) == 0 {
		return nil
	}

	totalChunks := (len(rows) + s.chunkSize - 1) / s.chunkSize
	s.setProgress(Progress{IsProcessing: true, ChunksTotal: totalChunks})

	for i := 0; i < totalChunks; i++ {
		if err := ctx.Err(); err != nil {
			s.stopProcessing()
			return err
		}

		start := i * s.chunkSize
		end := start + s.chunkSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := s.inserter.InsertMany(ctx, s.table, rows[start:end]); err != nil {
			s.stopProcessing()
			return &ChunkError{
				ChunkIndex: i,
				FirstRow:   start + 1,
				LastRow:    end,
				Err:        err,
			}
		}

		snapshot := Progress{
			IsProcessing:    i+1 < totalChunks,
			ChunksTotal:     totalChunks,
			ChunksCompleted: i + 1,
			PercentComplete: float64(i+1) / float64(totalChunks) * 100,
		}
		s.setProgress(snapshot)
		if onProgress != nil {
			onProgress(snapshot)
		}
	}

	return nil
}

func (s *Submitter) setProgress(p Progress) {
	s.mu.Lock()
	s.progress = p
	s.mu.Unlock()
}

func (s *Submitter) stopProcessing() {
	s.mu.Lock()
	s.progress.IsProcessing = false
	s.mu.Unlock()
}
