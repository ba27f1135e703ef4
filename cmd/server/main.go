// Package main initializes and starts the Ocean View Resort reservation
// server, setting up configuration, logging, the flat-file stores,
// services, handlers and the HTTP listener.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atinyakov/oceanview/internal/config"
	"github.com/atinyakov/oceanview/internal/logger"
	"github.com/atinyakov/oceanview/internal/metrics"
	"github.com/atinyakov/oceanview/internal/repository"
	"github.com/atinyakov/oceanview/internal/server"
	"github.com/atinyakov/oceanview/internal/server/handler/http"
	"github.com/atinyakov/oceanview/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, config file and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	zapLogger := log.Log

	// Initialize the flat-file repositories.
	reservationRepo := repository.NewFileReservationRepository(options.ReservationsPath())
	authRepo := repository.NewFileCredentialRepository(options.UsersPath())

	// Initialize business-logic services and make sure both files exist.
	authService := service.NewAuthService(authRepo)
	reservationService := service.NewReservationService(reservationRepo)
	if err := reservationService.EnsureExists(); err != nil {
		zapLogger.Fatal("cannot prepare reservations file", zap.Error(err))
	}
	if err := authService.EnsureUsersFile(); err != nil {
		zapLogger.Fatal("cannot prepare users file", zap.Error(err))
	}

	// Create HTTP handlers and build the router.
	authHandler := &http.AuthHandler{AuthService: authService, Logger: zapLogger}
	reservationHandler := &http.ReservationHandler{ReservationService: reservationService, Logger: zapLogger}
	router := http.NewRouter(authHandler, reservationHandler, metrics.New(authService), options.PublicDir, zapLogger)

	// Bind the listener, moving up to PortAttempts ports when busy.
	ln, err := server.Listen(options.Host, options.Port, options.PortAttempts)
	if err != nil {
		zapLogger.Fatal("failed to bind listener", zap.Int("port", options.Port), zap.Error(err))
	}
	port := server.Port(ln)
	if port != options.Port {
		zapLogger.Warn("preferred port busy, using fallback",
			zap.Int("preferred", options.Port), zap.Int("port", port))
	}

	srv := &nethttp.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLogger.Info("Ocean View Resort system started",
			zap.String("url", fmt.Sprintf("http://localhost:%d/", port)),
			zap.String("data_dir", options.DataDir))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zapLogger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), options.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		authService.Clear()
		return err
	})

	if err := g.Wait(); err != nil {
		zapLogger.Fatal("server stopped with error", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
