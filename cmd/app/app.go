package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/incevents/incevents-api/internal/api"
	"github.com/incevents/incevents-api/internal/blob"
	"github.com/incevents/incevents-api/internal/config"
	"github.com/incevents/incevents-api/internal/db"
	"github.com/incevents/incevents-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	config.Watch(conf)

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	blobStore, err := blob.NewCloudinaryStore(conf.Cloudinary)
	if err != nil {
		return fmt.Errorf("failed to initialize blob store -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, blobStore)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start the server -> %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zap.L().Info(fmt.Sprintf("received %v, shutting down", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	if sqlDB, err := postgresDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			zap.L().Warn("failed to close the database pool", zap.Error(err))
		}
	}

	return nil
}
