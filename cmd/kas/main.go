package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kas/internal/config"
	apphttp "kas/internal/http"
	"kas/internal/report"
	"kas/internal/sheets"
	"kas/internal/sheets/csvexport"
	gsheet "kas/internal/sheets/google"
	mem "kas/internal/sheets/memory"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var source sheets.Source
	switch cfg.DataBackend {
	case config.BackendSheets:
		cli, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Sheets API source", "error", err)
			os.Exit(1)
		}
		source = cli
	case config.BackendMemory:
		source = mem.NewSeeded()
	default:
		source = csvexport.New(cfg.SheetID)
	}
	logger.Info("Initialized sheet source", "backend", cfg.DataBackend)

	svc := report.NewService(source, cfg.DashboardGID, cfg.MonthlyGID, cfg.YearGIDs, report.FallbackData())
	srv := apphttp.NewServer(":"+cfg.Port, svc, cfg.CacheTTL)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting kas server", "port", cfg.Port, "backend", cfg.DataBackend, "configured_years", len(cfg.YearGIDs))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
