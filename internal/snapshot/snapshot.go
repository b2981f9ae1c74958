// Package snapshot guards the on-disk copy of the pay-plan dataset: fetch
// once when no cached copy exists, read from disk forever after. There is no
// invalidation path; staleness lasts until the file is removed by hand.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/baxromumarov/payplan/internal/payplan"
)

// Fetcher produces the full ordered dataset from the remote API.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]payplan.RawRecord, error)
}

// Snapshot is the complete cached dataset.
type Snapshot struct {
	Data []payplan.NamedRecord `json:"data"`
}

// Gate decides between fetching the dataset and reading the cached copy.
// Concurrent gates against the same path race on check-then-write; the
// snapshot is treated as a single-writer resource.
type Gate struct {
	path    string
	fetcher Fetcher
}

func NewGate(path string, fetcher Fetcher) *Gate {
	return &Gate{path: path, fetcher: fetcher}
}

// LoadOrFetch returns the snapshot at the gate's path, fetching and
// persisting it first when no cached copy exists. The freshly written file
// is deliberately read back from disk instead of returned from memory, which
// validates the round trip of the just-written artifact.
func (g *Gate) LoadOrFetch(ctx context.Context) (*Snapshot, error) {
	if _, err := os.Stat(g.path); errors.Is(err, os.ErrNotExist) {
		if err := g.fetchAndPersist(ctx); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	return load(g.path)
}

// fetchAndPersist builds the whole snapshot in memory before touching the
// filesystem, so an aborted run never leaves a partial file behind.
func (g *Gate) fetchAndPersist(ctx context.Context) error {
	raw, err := g.fetcher.FetchAll(ctx)
	if err != nil {
		return err
	}

	snap := Snapshot{Data: make([]payplan.NamedRecord, 0, len(raw))}
	for i, row := range raw {
		rec, err := payplan.ToNamedRecord(row, true)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		snap.Data = append(snap.Data, rec)
	}

	buf, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(g.path, buf, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	slog.Info("snapshot saved", "path", g.path, "records", len(snap.Data))
	return nil
}

func load(path string) (*Snapshot, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(buf, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}
