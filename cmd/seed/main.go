package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	app "github.com/agencyhub/lead-import/internal/application/lead"
	infrafile "github.com/agencyhub/lead-import/internal/infrastructure/file"
	"github.com/agencyhub/lead-import/internal/infrastructure/repository"
)

type seedOptions struct {
	databaseURL string
	table       string
	chunkSize   int
	baseDir     string
	files       infrafile.ColumnFiles
}

func newSeedCommand() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Bulk-import leads from local column files",
		Long: `Reads one newline-delimited text file per column, assembles the rows
by positional index and inserts them into PostgreSQL in fixed-size chunks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	cmd.Flags().StringVar(&opts.table, "table", "leads", "destination table")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", app.DefaultChunkSize, "rows per insert call")
	cmd.Flags().StringVar(&opts.baseDir, "base-dir", ".", "directory column files are resolved against")
	cmd.Flags().StringVar(&opts.files.Usernames, "usernames", "", "usernames column file (required)")
	cmd.Flags().StringVar(&opts.files.Followers, "followers", "", "followers column file")
	cmd.Flags().StringVar(&opts.files.Following, "following", "", "following column file")
	cmd.Flags().StringVar(&opts.files.Posts, "posts", "", "posts column file")
	cmd.Flags().StringVar(&opts.files.FullNames, "full-names", "", "full names column file")
	cmd.Flags().StringVar(&opts.files.Bios, "bios", "", "bios column file")
	cmd.Flags().StringVar(&opts.files.ProfileURLs, "profile-urls", "", "profile URLs column file")
	_ = cmd.MarkFlagRequired("usernames")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *seedOptions) error {
	if opts.databaseURL == "" {
		return errors.New("--database-url or DATABASE_URL is required")
	}

	ctx := cmd.Context()

	source := infrafile.NewLocalColumnSource(opts.baseDir)
	columns, err := source.Read(ctx, opts.files)
	if err != nil {
		return err
	}

	rows := app.AssembleRows(columns)
	if len(rows) == 0 {
		return app.ErrNoUsernames
	}
	if errs := app.Validate(rows); len(errs) > 0 {
		for _, e := range errs {
			cmd.PrintErrf("row %d: %s: %s\n", e.RowIndex+1, e.Field, e.Message)
		}
		return fmt.Errorf("%d rows failed validation", len(errs))
	}

	pool, err := pgxpool.New(ctx, opts.databaseURL)
	if err != nil {
		return fmt.Errorf("create pgx pool: %w", err)
	}
	defer pool.Close()

	inserter := repository.NewLeadBulkInsertRepository(pool)
	submitter := app.NewSubmitter(inserter, opts.table, opts.chunkSize)

	err = submitter.Submit(ctx, rows, func(p app.Progress) {
		cmd.Printf("chunk %d/%d done (%.0f%%)\n", p.ChunksCompleted, p.ChunksTotal, p.PercentComplete)
	})
	if err != nil {
		var chunkErr *app.ChunkError
		if errors.As(err, &chunkErr) {
			return fmt.Errorf("import failed at rows %d-%d: %w", chunkErr.FirstRow, chunkErr.LastRow, chunkErr.Err)
		}
		return err
	}

	cmd.Printf("imported %d leads into %s\n", len(rows), opts.table)
	return nil
}

func main() {
	if err := newSeedCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
