package lead

// ImportRun is one enqueued column import. The raw columns travel with the
// run so a worker can rebuild the pipeline on any attempt.
type ImportRun struct {
	ID          string
	Columns     ColumnSet
	Status      string
	Attempts    int
	MaxAttempts int
}

// RunProgress is persisted after every submitted chunk.
type RunProgress struct {
	RowCount        int64
	ChunksTotal     int
	ChunksCompleted int
	PercentComplete float64
}

// RunSummary is recorded when a run reaches a terminal state.
type RunSummary struct {
	RowCount        int64
	ChunksTotal     int
	ChunksCompleted int
}

// RunStatus is the read-model view of a run exposed over the API.
type RunStatus struct {
	ID              string
	Status          string
	RowCount        int64
	ChunksTotal     int
	ChunksCompleted int
	PercentComplete float64
	Attempts        int
	ErrorMessage    *string
}
