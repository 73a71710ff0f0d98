// Command loader bulk-ingests a directory of scorecard JSON files, the
// offline counterpart of POST /v1/matches/upload. Files are processed
// on a bounded worker pool; duplicates count as skips, not failures.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/cricket-scorecard/internal/app"
	"github.com/riskibarqy/cricket-scorecard/internal/config"
	"github.com/riskibarqy/cricket-scorecard/internal/platform/logging"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

func main() {
	dir := flag.String("dir", "", "directory of scorecard JSON files")
	workers := flag.Int("workers", 8, "number of concurrent ingestions")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if strings.TrimSpace(*dir) == "" {
		logger.Error("-dir is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	logging.SetDefault(logging.NewJSON(cfg.LogLevel))

	stores, err := app.NewStores(cfg, logger)
	if err != nil {
		logger.Error("build stores", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = stores.Close()
	}()

	files, err := listScorecardFiles(*dir)
	if err != nil {
		logger.Error("list scorecard files", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Info("no scorecard files found", "dir", *dir)
		return
	}

	ingest := usecase.NewIngestionService(stores.TxManager, logging.Default())

	pool, err := ants.NewPool(*workers)
	if err != nil {
		logger.Error("create worker pool", "error", err)
		os.Exit(1)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		ingested atomic.Int64
		skipped  atomic.Int64
		failed   atomic.Int64
	)
	ctx := context.Background()

	for _, file := range files {
		file := file
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			raw, err := os.ReadFile(file)
			if err != nil {
				failed.Add(1)
				logger.Error("read scorecard file", "file", file, "error", err)
				return
			}

			created, err := ingest.Ingest(ctx, raw)
			switch {
			case err != nil:
				failed.Add(1)
				logger.Error("ingest scorecard file", "file", file, "error", err)
			case created:
				ingested.Add(1)
			default:
				skipped.Add(1)
			}
		})
		if err != nil {
			wg.Done()
			failed.Add(1)
			logger.Error("submit scorecard file", "file", file, "error", err)
		}
	}
	wg.Wait()

	logger.Info("bulk load finished",
		"files", len(files),
		"ingested", ingested.Load(),
		"skipped", skipped.Load(),
		"failed", failed.Load(),
	)
	if failed.Load() > 0 {
		os.Exit(1)
	}
}

func listScorecardFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}
