// Package pipeline sequences the export: cache-gated fetch, normalization,
// delimited file, spreadsheet, optional Postgres sink, desktop hand-off.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baxromumarov/payplan/internal/config"
	"github.com/baxromumarov/payplan/internal/export"
	"github.com/baxromumarov/payplan/internal/fetch"
	"github.com/baxromumarov/payplan/internal/payplan"
	"github.com/baxromumarov/payplan/internal/snapshot"
	"github.com/baxromumarov/payplan/internal/store"
)

// Run executes the whole export once. Fetch-time errors are fatal and happen
// before anything is written; from the snapshot on, each output step only
// runs if the previous one succeeded.
func Run(ctx context.Context, cfg *config.Config) error {
	client := fetch.NewClient(cfg.BaseURL, cfg.PageSize, cfg.HTTPTimeout)
	gate := snapshot.NewGate(cfg.SnapshotPath, client)

	snap, err := gate.LoadOrFetch(ctx)
	if err != nil {
		return fmt.Errorf("load pay plan: %w", err)
	}
	slog.Info("pay plan loaded", "records", len(snap.Data))

	csvPath := cfg.CSVPath()
	if err := export.WriteDelimited(csvPath, export.BuildTable(snap.Data), ','); err != nil {
		return fmt.Errorf("write delimited file: %w", err)
	}
	slog.Info("delimited file written", "path", csvPath)

	xlsxPath := cfg.XLSXPath()
	if err := export.WriteSpreadsheet(csvPath, xlsxPath); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	slog.Info("spreadsheet written", "path", xlsxPath)

	if cfg.DatabaseURL != "" {
		if err := syncStore(ctx, cfg.DatabaseURL, snap.Data); err != nil {
			return fmt.Errorf("sync store: %w", err)
		}
	}

	return export.OpenFile(xlsxPath)
}

func syncStore(ctx context.Context, connStr string, records []payplan.NamedRecord) error {
	st, err := store.NewStore(connStr)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	inserted, err := st.InsertListings(ctx, records)
	if err != nil {
		return err
	}
	slog.Info("listings stored", "inserted", inserted, "total", len(records))
	return nil
}
