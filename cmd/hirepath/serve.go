package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/config"
	"hirepath-engine/internal/events"
	"hirepath-engine/internal/feed"
	"hirepath-engine/internal/httpapi"
	"hirepath-engine/internal/mailscan"
	"hirepath-engine/internal/resume"
	"hirepath-engine/internal/savedjobs"
	"hirepath-engine/internal/scheduler"
	"hirepath-engine/internal/secrets"
	"hirepath-engine/internal/store"
	"hirepath-engine/internal/tailor"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the engine HTTP API on localhost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "directory for config and state")
	return cmd
}

// The desktop wrapper passes its own data dir through the environment.
func defaultDataDir() string {
	if d := os.Getenv("HIREPATH_DATA_DIR"); d != "" {
		return d
	}
	return "."
}

func serve(ctx context.Context, dataDir string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// One engine per data dir; a second instance would corrupt state.
	lock, err := store.AcquireLock(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}

	var cfgVal atomic.Value
	loadCfg := func() (config.Config, error) { return config.Load(userCfgPath) }
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("load config %s: %w", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	ds, err := openStore(cfg, dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = ds.Close() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	appsRepo, err := apps.New(ctx, ds, log)
	if err != nil {
		return fmt.Errorf("applications: %w", err)
	}
	savedRepo, err := savedjobs.New(ctx, ds, log)
	if err != nil {
		return fmt.Errorf("saved jobs: %w", err)
	}
	resumeHolder, err := resume.NewHolder(ctx, ds, log)
	if err != nil {
		return fmt.Errorf("resume: %w", err)
	}

	feedClient, err := buildFeed(cfg)
	if err != nil {
		return err
	}

	gateway := tailor.New(tailor.Config{
		APIBase:     cfg.Tailor.APIBase,
		Model:       cfg.Tailor.Model,
		Temperature: cfg.Tailor.Temperature,
		MaxTokens:   cfg.Tailor.MaxTokens,
		TopP:        cfg.Tailor.TopP,
	}, func() (string, error) { return secrets.Get(secrets.GroqAPIKey) }, nil)

	hub := events.NewHub()

	scanner := mailscan.New(appsRepo, ds, hub, log, func() (string, error) {
		return secrets.Get(secrets.IMAPPassword)
	})

	if cfg.MailScan.Enabled {
		interval := time.Duration(cfg.MailScan.IntervalSeconds) * time.Second
		if interval <= 0 {
			interval = 15 * time.Minute
		}
		go scheduler.Every(ctx, interval, "mailscan", log, func(ctx context.Context) error {
			_, err := scanner.RunOnce(ctx, cfgVal.Load().(config.Config))
			return err
		})
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Apps:        appsRepo,
		Saved:       savedRepo,
		Resume:      resumeHolder,
		Feed:        feedClient,
		Tailor:      gateway,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		RunMailScan: scanner.RunOnce,
		Log:         log,
	})
	handler := httpapi.Chain(router,
		httpapi.RequestID,
		httpapi.AccessLog(log),
		httpapi.Recover(log),
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Info().Str("addr", addr).Str("store", cfg.App.Store).Str("data_dir", dataDir).Msg("engine listening")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("engine stopped")
	return nil
}

func openStore(cfg config.Config, dataDir string) (store.DocStore, error) {
	switch cfg.App.Store {
	case "file":
		return store.OpenFile(filepath.Join(dataDir, "state"))
	default:
		return store.OpenSQLite(filepath.Join(dataDir, "hirepath.db"))
	}
}

func buildFeed(cfg config.Config) (*feed.Client, error) {
	switch cfg.Feed.Provider {
	case "adzuna":
		a := feed.NewAdzuna(feed.AdzunaConfig{
			Country:        cfg.Feed.Country,
			ResultsPerPage: cfg.Feed.ResultsPerPage,
			Pages:          cfg.Feed.Pages,
			RatePerSec:     cfg.Feed.RatePerSec,
			RateBurst:      cfg.Feed.RateBurst,
		}, func() (string, string, error) {
			id, err := secrets.Get(secrets.AdzunaAppID)
			if err != nil {
				return "", "", err
			}
			key, err := secrets.Get(secrets.AdzunaAppKey)
			if err != nil {
				return "", "", err
			}
			return id, key, nil
		})
		return feed.NewClient(a), nil
	default:
		fx, err := feed.NewFixture()
		if err != nil {
			return nil, fmt.Errorf("fixture feed: %w", err)
		}
		return feed.NewClient(fx), nil
	}
}
