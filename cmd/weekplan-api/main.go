package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/application/services/scheduling"
	appconfig "github.com/foodops/weekplan/pkg/infrastructure/config"
	"github.com/foodops/weekplan/pkg/infrastructure/monitoring"
	"github.com/foodops/weekplan/pkg/infrastructure/repositories/gormstore"
	"github.com/foodops/weekplan/pkg/interfaces/httpapi"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to YAML configuration file")
		listen     = flag.String("listen", "", "Listen address (overrides config)")
	)
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(*configFile, *listen, logger); err != nil {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(configFile, listen string, logger zerolog.Logger) error {
	config := appconfig.Default()
	if configFile != "" {
		loaded, err := appconfig.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		config = loaded
	}
	if listen != "" {
		config.Listen = listen
	}

	facility, err := config.FacilityConfig()
	if err != nil {
		return fmt.Errorf("facility config: %w", err)
	}

	store, err := gormstore.Open(config.Database, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	service, err := scheduling.NewService(
		facility,
		store.Products(),
		store.Sales(),
		store.Schedules(),
		logger,
	)
	if err != nil {
		return err
	}

	monitor := monitoring.NewCollector()
	server := httpapi.NewServer(service, store.Products(), store.Schedules(), monitor, logger)

	httpServer := &http.Server{
		Addr:    config.Listen,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", config.Listen).Msg("server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
