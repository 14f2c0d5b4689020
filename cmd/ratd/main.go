// Command ratd serves PyRat agents over HTTP.
//
// Environment:
//
//	RATD_ADDR       listen address (default ":8080")
//	RATD_CONFIG     optional YAML strategy config
//	RATD_LOG_LEVEL  debug | info | warn | error (default info)
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/ratmaze/server"
	"github.com/katalvlaran/ratmaze/strategy"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(os.Getenv("RATD_LOG_LEVEL"))}))
	if err := run(log); err != nil {
		log.Error("ratd stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := strategy.DefaultConfig()
	if path := os.Getenv("RATD_CONFIG"); path != "" {
		loaded, err := strategy.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	addr := os.Getenv("RATD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(cfg, log)
	if err != nil {
		return err
	}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", addr), slog.String("planner", cfg.Planner))
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")

	return httpSrv.Shutdown(shutdownCtx)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
