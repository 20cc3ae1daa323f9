package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledcalc/internal/app"
	"ledcalc/internal/appconf"
	"ledcalc/internal/logging"
	"ledcalc/internal/restapi"
	"ledcalc/internal/webui"
)

func main() {
	var cfg appconf.Config
	var envFlag, apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key (negative disables limiting)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)

	level, err := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewStructuredLogger(os.Stdout, level)
	if err != nil {
		logger.Warn("falling back to info log level", "error", err)
	}

	if err := run(cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

func run(cfg appconf.Config, logger *slog.Logger) error {
	application := &app.Application{
		Config: cfg,
		Logger: logger,
	}

	api := restapi.NewRestAPI(application)
	defer api.Close()

	router := api.Routes()
	if cfg.Env != appconf.Production {
		webUI := &webui.WebUI{Logger: logger}
		webUI.SetWebUIRoutes(router)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.WithMiddleware(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
