package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/baxromumarov/payplan/internal/api"
	"github.com/baxromumarov/payplan/internal/config"
	"github.com/baxromumarov/payplan/internal/fetch"
	"github.com/baxromumarov/payplan/internal/snapshot"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// A cold cache is filled on startup so the server always has a dataset.
	client := fetch.NewClient(cfg.BaseURL, cfg.PageSize, cfg.HTTPTimeout)
	gate := snapshot.NewGate(cfg.SnapshotPath, client)
	snap, err := gate.LoadOrFetch(context.Background())
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(snap.Data)

	slog.Info("starting server", "port", cfg.Port, "listings", len(snap.Data))
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
