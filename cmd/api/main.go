package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	app "github.com/agencyhub/lead-import/internal/application/lead"
	"github.com/agencyhub/lead-import/internal/bootstrap"
	"github.com/agencyhub/lead-import/internal/config"
	"github.com/agencyhub/lead-import/internal/infrastructure/notify"
	"github.com/agencyhub/lead-import/internal/infrastructure/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; config failures go straight to stderr.
		panic(err)
	}
	log := cfg.Logger()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to create pgx pool")
	}
	defer pool.Close()

	notifier := notify.NewLogNotifier(log)
	server := bootstrap.NewHTTPServer(db, notifier)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	runRepo := repository.NewImportRunRepository(db)
	inserter := repository.NewLeadBulkInsertRepository(pool)

	worker := app.NewImportWorker(runRepo, inserter, notifier, log, app.ImportWorkerConfig{
		Workers:       cfg.ImportWorkers,
		ChunkSize:     cfg.ImportChunkSize,
		Table:         cfg.LeadTable,
		PollInterval:  cfg.RunPollInterval,
		LeaseDuration: cfg.RunLeaseDuration,
	})
	worker.Start(workerCtx)

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("graceful shutdown failed")
	}
}
