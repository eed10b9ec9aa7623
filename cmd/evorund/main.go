// Command evorund serves the evolutionary engine over HTTP: it mounts
// the run registry behind the JSON routes in internal/httpapi and listens
// until it receives SIGINT or SIGTERM, then shuts down gracefully.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evoserve/internal/config"
	"evoserve/internal/evo"
	"evoserve/internal/httpapi"
	"evoserve/internal/scorer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	reg := evo.NewRegistry()
	sc := scorer.New(cfg.FitnessURL)
	handler := httpapi.New(reg, sc, logger)

	srv := &http.Server{
		Addr:    config.ListenAddr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("event=listen addr=%s fitness_url=%s", config.ListenAddr, cfg.FitnessURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Printf("event=shutdown reason=signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
