package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"storebill_server/api"
	"storebill_server/config"
	"storebill_server/database"
	"storebill_server/services"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := config.NewLogger(cfg)

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	db, err := database.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", gecho.Field("error", err))
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(migrateCtx, db, logger); err != nil {
		logger.Fatal("Failed to apply migrations", gecho.Field("error", err))
	}

	sm := services.NewServiceManager(logger, cfg, db)
	defer sm.Close()

	server := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(logger, cfg, sm),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	shutdownDone := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		sig := <-c

		logger.Info("Received shutdown signal", gecho.Field("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", gecho.Field("error", err))
		}
		close(shutdownDone)
	}()

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to start server", gecho.Field("error", err))
	}

	<-shutdownDone
	logger.Info("Server stopped")
}
