package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/api/handlers"
	"github.com/linesmerrill/fleetcheck/api/scheduler"
	"github.com/linesmerrill/fleetcheck/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//initialize store, workspace and router
	if err := a.Initialize(ctx); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}
	defer a.Close()

	s := scheduler.NewScheduler(a.Workspace, a.Mailer, &a.Config)
	if err := s.Start(); err != nil {
		zap.S().Errorw("reminders are disabled", "error", err)
	} else {
		defer s.Stop()
	}

	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.S().Infow("fleetcheck is up and running",
		"addr", srv.Addr,
		"backend", a.Config.StoreBackend,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Errorw("server stopped", "error", err)
	}
}
