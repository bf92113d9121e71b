package history

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/remember/internal/logger"
	"github.com/google/uuid"
)

const fileMode os.FileMode = 0o644

// Load merges the history file at path into entries, which already holds
// the new item. Reads are best-effort: a missing or unreadable file leaves
// entries as they are.
func Load(ctx context.Context, entries []string, path string, limit int) []string {
	log := logger.FromContext(ctx).WithComponent("history").WithPath(path)

	if len(entries) >= limit {
		return entries
	}

	f, err := os.Open(path)
	if err != nil {
		log.Debugw("No history loaded", "error", err)
		return entries
	}
	defer f.Close()

	before := len(entries)
	entries = LoadFrom(entries, f, limit)
	log.Debugw("Loaded history", "read", len(entries)-before, "max", limit)

	return entries
}

// LoadFrom appends lines from r that are not yet in entries, stopping as
// soon as entries holds limit items. Lines past the cap are never read. A
// read error or a line that is not valid UTF-8 ends the scan and keeps what
// was collected.
func LoadFrom(entries []string, r io.Reader, limit int) []string {
	br := bufio.NewReader(r)

	for len(entries) < limit {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			break
		}
		if line == "" || !utf8.ValidString(line) {
			break
		}

		line = trimEOL(line)
		if !slices.Contains(entries, line) {
			entries = append(entries, line)
		}

		if err != nil {
			break
		}
	}

	return entries
}

// Write truncates path and writes one entry per line.
func Write(path string, entries []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}

	if err := writeEntries(f, entries); err != nil {
		_ = f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// WriteAtomic writes entries to a sibling temp file and renames it over
// path, so a failed write leaves the previous contents in place.
func WriteAtomic(path string, entries []string) error {
	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	mode := fileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return &IOError{Op: "create", Path: tmpPath, Err: err}
	}

	if err := writeEntries(f, entries); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &IOError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &IOError{Op: "sync", Path: tmpPath, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "close", Path: tmpPath, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func writeEntries(w io.Writer, entries []string) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
