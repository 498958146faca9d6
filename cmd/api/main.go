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

	"dog-health-tracker/internal/app"
	"dog-health-tracker/internal/config"
	"dog-health-tracker/internal/domain/reminders"
	"dog-health-tracker/internal/router"
)

// @title Dog Health Tracker API
// @version 1.0
// @description Registro de salud de un perro: perfil, medicaciones, vacunas, peso, visitas, comida, diario y terapias, con recordatorios programados.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	loc, _ := cfg.Reminder.Location()
	sched, err := reminders.NewScheduler(a.Reminders, cfg.Reminder.Cron, loc, log)
	if err != nil {
		return err
	}
	sched.Start()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:        a.Store,
			Settings:     a.Settings,
			Images:       a.Images,
			Reminders:    a.Reminders,
			TriggerToken: cfg.Reminder.TriggerToken,
			Logger:       log,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":          srv.Addr,
			"backend":       a.Store.Backend(),
			"next_reminder": sched.Next().Format(time.RFC3339),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sched.Stop(shutdownCtx)
	return srv.Shutdown(shutdownCtx)
}
