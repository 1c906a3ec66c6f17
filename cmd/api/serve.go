package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"menuhub/internal/config"
	"menuhub/internal/db"
	"menuhub/internal/llm"
	"menuhub/internal/logger"
	"menuhub/internal/menu"
	"menuhub/internal/router"
	"menuhub/internal/scholar"
	"menuhub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownGrace = 15 * time.Second

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Start the HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load(true)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── DB ─────────────────────────
	pool, err := db.ConnectPostgres(ctx, db.PoolConfig{
		DSN:      cfg.DatabaseURL,
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	}, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	images, err := storage.NewR2Client(ctx, storage.R2Options{
		Endpoint:   cfg.R2.Endpoint,
		Region:     cfg.R2.Region,
		AccessKey:  cfg.R2.AccessKey,
		SecretKey:  cfg.R2.SecretKey,
		Bucket:     cfg.R2.Bucket,
		PresignTTL: cfg.R2.PresignTTL,
	})
	if err != nil {
		return errors.Wrap(err, "init r2")
	}

	// ───────────────────────── MENUS ─────────────────────────
	menuRepo := menu.NewPostgresRepository(
		db.NewStore(pool),
		menu.WithStrictCategories(cfg.StrictDishCategories),
	)
	menuService := menu.NewService(menuRepo, images, log)

	// ───────────────────────── UTILITIES ─────────────────────────
	chat, err := llm.NewOpenAIClient(llm.ChatOptions{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return errors.Wrap(err, "init llm client")
	}
	searcher := scholar.NewScholarSearcher(cfg.ScholarBaseURL, cfg.RequestTimeout)

	r := router.NewRouter(router.Deps{
		Log:            log,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		Menus:          menu.NewHandler(menuService, log),
		Stories:        llm.NewHandler(llm.NewStoryService(chat, log), log),
		Articles:       scholar.NewHandler(searcher, log),
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown")
	}
	return nil
}
