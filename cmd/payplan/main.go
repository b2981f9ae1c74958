package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/baxromumarov/payplan/internal/config"
	"github.com/baxromumarov/payplan/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := pipeline.Run(context.Background(), cfg); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}
