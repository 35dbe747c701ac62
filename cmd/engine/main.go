package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jobextract-engine/internal/ai"
	"jobextract-engine/internal/config"
	"jobextract-engine/internal/events"
	"jobextract-engine/internal/fetch"
	"jobextract-engine/internal/httpapi"
	"jobextract-engine/internal/pipeline"
	"jobextract-engine/internal/secrets"
	"jobextract-engine/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dataDir := os.Getenv("ENGINE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	cfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", cfgPath, err)
	}

	// one engine per data dir; two writers on the same sqlite file corrupt
	// the journal
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine instance owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	db, err := store.Open(filepath.Join(dataDir, "extractions.db"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}

	fetcher := fetch.New(fetch.Config{
		Timeout:       time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		UserAgent:     cfg.Fetch.UserAgent,
		HostReqPerSec: cfg.Fetch.HostReqPerSec,
		HostBurst:     cfg.Fetch.HostBurst,
	}, log.Named("fetch"))

	aiExtractor, err := ai.New(ai.Config{
		APIKey:          secrets.APIKey(cfg.AI.KeyringAccount),
		BaseURL:         cfg.AI.BaseURL,
		Model:           cfg.AI.Model,
		Timeout:         time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		MaxExcerptChars: cfg.AI.MaxExcerptChars,
	}, log.Named("ai"))
	if err != nil {
		return fmt.Errorf("build ai extractor: %w", err)
	}

	hub := events.NewHub()
	pipe := pipeline.New(fetcher, aiExtractor, db, hub, log.Named("pipeline"))

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           httpapi.Routes(httpapi.Deps{Pipeline: pipe, DB: db, Hub: hub, Log: log.Named("http")}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("engine listening", zap.String("addr", srv.Addr), zap.String("data_dir", dataDir))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
