package lead_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	app "github.com/agencyhub/lead-import/internal/application/lead"
	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type fakeInserter struct {
	tables    []string
	chunkLens []int
	failAt    int // 1-based call index that fails; 0 = never
	onCall    func(call int)
}

func (f *fakeInserter) InsertMany(ctx context.Context, table string, leads []domain.Lead) error {
	f.tables = append(f.tables, table)
	f.chunkLens = append(f.chunkLens, len(leads))
	call := len(f.chunkLens)
	if f.onCall != nil {
		f.onCall(call)
	}
	if f.failAt == call {
		return errors.New("insert failed")
	}
	return nil
}

func makeRows(n int) []domain.Lead {
	rows := make([]domain.Lead, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, domain.Lead{Username: fmt.Sprintf("user%d", i)})
	}
	return rows
}

func TestSubmitterChunkSizesAndProgress(t *testing.T) {
	t.Parallel()

	inserter := &fakeInserter{}
	submitter := app.NewSubmitter(inserter, "leads", 40)

	var percents []float64
	err := submitter.Submit(context.Background(), makeRows(85), func(p app.Progress) {
		percents = append(percents, p.PercentComplete)
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantLens := []int{40, 40, 5}
	if len(inserter.chunkLens) != len(wantLens) {
		t.Fatalf("expected %d insert calls, got %d", len(wantLens), len(inserter.chunkLens))
	}
	for i, want := range wantLens {
		if inserter.chunkLens[i] != want {
			t.Fatalf("chunk %d: expected %d rows, got %d", i, want, inserter.chunkLens[i])
		}
	}

	wantPercents := []float64{100.0 / 3, 200.0 / 3, 100}
	if len(percents) != len(wantPercents) {
		t.Fatalf("expected %d progress updates, got %d", len(wantPercents), len(percents))
	}
	for i, want := range wantPercents {
		if math.Abs(percents[i]-want) > 0.01 {
			t.Fatalf("progress %d: expected ~%.2f, got %.2f", i, want, percents[i])
		}
	}

	final := submitter.Progress()
	if final.IsProcessing {
		t.Fatal("expected processing to be finished")
	}
	if final.PercentComplete != 100 {
		t.Fatalf("expected 100%% complete, got %.2f", final.PercentComplete)
	}
}

func TestSubmitterFailFastOnChunkError(t *testing.T) {
	t.Parallel()

	inserter := &fakeInserter{failAt: 2}
	submitter := app.NewSubmitter(inserter, "leads", 40)

	err := submitter.Submit(context.Background(), makeRows(85), nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var chunkErr *app.ChunkError
	if !errors.As(err, &chunkErr) {
		t.Fatalf("expected ChunkError, got %T", err)
	}
	if chunkErr.ChunkIndex != 1 {
		t.Fatalf("expected chunk index 1, got %d", chunkErr.ChunkIndex)
	}
	if chunkErr.FirstRow != 41 || chunkErr.LastRow != 80 {
		t.Fatalf("expected rows 41-80, got %d-%d", chunkErr.FirstRow, chunkErr.LastRow)
	}

	if len(inserter.chunkLens) != 2 {
		t.Fatalf("expected the third chunk to never be submitted, got %d calls", len(inserter.chunkLens))
	}
	if submitter.Progress().IsProcessing {
		t.Fatal("expected processing to stop after failure")
	}
}

func TestSubmitterCancelledBetweenChunks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	inserter := &fakeInserter{onCall: func(call int) {
		if call == 1 {
			cancel()
		}
	}}
	submitter := app.NewSubmitter(inserter, "leads", 40)

	err := submitter.Submit(ctx, makeRows(85), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(inserter.chunkLens) != 1 {
		t.Fatalf("expected no further chunks after cancellation, got %d calls", len(inserter.chunkLens))
	}
}

func TestSubmitterEmptyRows(t *testing.T) {
	t.Parallel()

	inserter := &fakeInserter{}
	submitter := app.NewSubmitter(inserter, "leads", 40)

	if err := submitter.Submit(context.Background(), nil, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(inserter.chunkLens) != 0 {
		t.Fatalf("expected no insert calls, got %d", len(inserter.chunkLens))
	}
}

func TestSubmitterUsesConfiguredTable(t *testing.T) {
	t.Parallel()

	inserter := &fakeInserter{}
	submitter := app.NewSubmitter(inserter, "prospects", 0)

	if err := submitter.Submit(context.Background(), makeRows(2), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(inserter.tables) != 1 || inserter.tables[0] != "prospects" {
		t.Fatalf("expected one call against prospects, got %v", inserter.tables)
	}
}
