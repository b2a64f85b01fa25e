package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizdesk/internal/config"
	"bizdesk/internal/database"
	"bizdesk/internal/handlers"
	"bizdesk/internal/logger"
	"bizdesk/internal/middleware"
	"bizdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// @title           bizdesk API
// @version         1.0
// @description     Reference collaborator for the bizdesk client: users, expenses and expense categories.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	if err := database.SeedCategories(ctx, db); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if appConfig.SeedData {
		if err := database.SeedUsers(ctx, db); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}
	if appConfig.AdminUsername != "" && appConfig.AdminPassword != "" {
		if _, err := services.NewAccountService(db).EnsureAdmin(ctx, appConfig.AdminUsername, appConfig.AdminEmail, appConfig.AdminPassword); err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
	}

	tokens := middleware.NewTokenIssuer(appConfig.JWTSecret, appConfig.JWTExpirationDur)
	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           handlers.NewRouter(db, tokens),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting bizdesk API on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
