package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"nurse-roster/internal/config"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// dualHandler пишет всё в основной вывод, а ERROR и выше дополнительно в файл ошибок
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		// сбой записи в файл не должен ронять основной лог
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func newCoreHandler(env string, out io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	switch env {
	case envDev:
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}
}

// newErrorSink - файл ошибок с ротацией по размеру и возрасту
func newErrorSink(cfg config.Log) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.ErrorFile,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

func newLogger(core slog.Handler, errOut io.Writer) *slog.Logger {
	errorHandler := slog.NewTextHandler(errOut, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  core,
		errorHandler: errorHandler,
	})
}

func setupLogger(env string, cfg config.Log) (*slog.Logger, func()) {
	core := newCoreHandler(env, os.Stdout)

	if cfg.ErrorFile == "" {
		return slog.New(core), func() {}
	}

	sink := newErrorSink(cfg)

	return newLogger(core, sink), func() { _ = sink.Close() }
}
