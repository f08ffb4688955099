package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitengage/gym-manager/internal/core/ports"
	"github.com/fitengage/gym-manager/internal/core/service"
	"github.com/fitengage/gym-manager/internal/infrastructure/config"
	"github.com/fitengage/gym-manager/internal/infrastructure/db/gormstore"
	"github.com/fitengage/gym-manager/internal/infrastructure/legacycsv"
	"github.com/fitengage/gym-manager/internal/infrastructure/queue"
	"github.com/fitengage/gym-manager/pkg/logger"
)

func main() {
	var (
		csvPath = flag.String("csv", "", "path to the legacy member CSV export")
		workers = flag.Int("workers", 0, "insert workers (defaults to IMPORT_WORKERS)")
	)
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction(), Output: os.Stderr})
	log := logger.Component("import")

	if *workers <= 0 {
		*workers = cfg.Import.Workers
	}

	store, err := gormstore.Connect(ctx, gormstore.Config{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.URL,
		LogLevel: cfg.DB.LogLevel,
	}, logger.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	importer := service.NewImportService(gormstore.NewMemberRepository(store), log)
	dispatcher := queue.NewDispatcher(*workers, importer, log)
	dispatcher.Start(ctx)

	rows, readErr := legacycsv.ReadFile(*csvPath, func(row ports.LegacyMemberRow) error {
		return dispatcher.Enqueue(ctx, row)
	})
	report := dispatcher.Close()

	if readErr != nil {
		log.Error().Err(readErr).Int("rows_read", rows).Msg("import aborted")
	}
	log.Info().Int("rows_read", rows).Int64("imported", report.Imported).Int64("skipped", report.Skipped).Msg("import finished")

	out, _ := json.Marshal(report)
	fmt.Println(string(out))
	if readErr != nil {
		store.Close()
		os.Exit(1)
	}
}
