package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/routes"
	"stayhub-backend/services"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stayhub-backend",
		Short: "StayHub rental marketplace API",
		RunE:  runServe,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply migrations and seed reference data",
		RunE:  runSeed,
	}
	rootCmd.AddCommand(serveCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*config.Config, zerolog.Logger, *gorm.DB, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	logr := config.NewLogger(cfg)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("database connect failed: %w", err)
	}

	return cfg, logr, db, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logr, db, err := setup()
	if err != nil {
		return err
	}
	if err := config.Seed(db, cfg, logr); err != nil {
		return err
	}
	logr.Info().Msg("seed complete")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logr, db, err := setup()
	if err != nil {
		return err
	}

	if err := config.Seed(db, cfg, logr); err != nil {
		return err
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	propertyService := services.NewPropertyService(db)
	reservationService := services.NewReservationService(db)
	adminService := services.NewAdminService(db)
	categoryService := services.NewCategoryService(db)

	router := routes.SetupRouter(
		cfg,
		logr,
		controllers.NewAuthController(authService),
		controllers.NewPropertyController(propertyService),
		controllers.NewReservationController(reservationService),
		controllers.NewAdminController(adminService),
		controllers.NewCategoryController(categoryService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logr.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logr.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logr.Info().Msg("server stopped")
	return nil
}
