// Package history maintains a most-recently-used list in a flat text file,
// one entry per line, newest first.
package history

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CodeMonkeyCybersecurity/remember/internal/config"
	"github.com/CodeMonkeyCybersecurity/remember/internal/logger"
)

// Remember reads one item from in, moves it to the front of the history file
// described by cfg, and returns it. Reads of the existing file are
// best-effort; a write failure is returned and aborts the run.
func Remember(ctx context.Context, in io.Reader, cfg config.HistoryConfig) (string, error) {
	log := logger.FromContext(ctx).WithComponent("history")
	start := time.Now()
	ctx, span := log.StartOperation(ctx, "history.remember")

	item, path, err := remember(ctx, in, cfg)

	log.FinishOperation(ctx, span, "history.remember", start, err, "path", path)
	return item, err
}

func remember(ctx context.Context, in io.Reader, cfg config.HistoryConfig) (string, string, error) {
	item, err := ReadInput(in)
	if err != nil {
		return "", "", err
	}

	file := cfg.File
	if file == "" {
		file = DefaultPath(os.Getenv)
	}
	path, err := ResolvePath(file)
	if err != nil {
		return "", "", err
	}

	entries := Load(ctx, []string{item}, path, cfg.MaxEntries())

	write := Write
	if cfg.Atomic {
		write = WriteAtomic
	}
	if err := write(path, entries); err != nil {
		return "", path, fmt.Errorf("failed to save history: %w", err)
	}

	logger.FromContext(ctx).WithComponent("history").WithPath(path).
		Infow("Remembered item", "entries", len(entries), "atomic", cfg.Atomic)

	return item, path, nil
}
