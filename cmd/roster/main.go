package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nurse-roster/internal/config"
	claim_form "nurse-roster/internal/service/claim-form"
	"nurse-roster/internal/service/overtime"
	shift_entry "nurse-roster/internal/service/shift-entry"
	"nurse-roster/internal/storage/mysql"
)

func main() {
	cfg := config.MustConfig()

	log, closeLog := setupLogger(cfg.Env, cfg.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := mysql.New(ctx, cfg.DB)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	overtimeService := overtime.NewOvertimeService(log, storage)
	services := Services{
		Overtime:   overtimeService,
		ShiftEntry: shift_entry.NewShiftEntryService(storage),
		ClaimForm:  claim_form.NewClaimFormService(overtimeService),
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, services),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		// выгрузка Excel получает двойной RequestTimeout
		WriteTimeout: cfg.HTTPServer.Timeout + 2*cfg.RequestTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped")
}
