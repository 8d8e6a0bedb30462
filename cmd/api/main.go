package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	_ "pulsehire/docs" // Swagger docs
	"pulsehire/internal/api"
	"pulsehire/internal/auth"
	"pulsehire/internal/config"
	"pulsehire/internal/storage"
)

// @title PulseHire API
// @version 1.0
// @description Recruitment pipeline tracker: candidate de-duplication, CV keyword scoring and bulk imports

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	cfg := config.Load()

	log.WithField("path", cfg.DBPath).Info("opening database")
	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("db open")
	}
	defer db.Close()

	ctx := context.Background()
	if err := auth.NewService(db).SeedAdminIfEmpty(ctx); err != nil {
		log.WithError(err).Fatal("seed admin user")
	}

	apiSrv := api.NewAPI(db, cfg.UploadsDir)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.WithField("port", cfg.Port).Info("API server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
