// Package store persists the ledger as a single JSON snapshot on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skint-dev/skint/internal/ledger"
)

// DefaultFile is the snapshot filename used when none is configured.
const DefaultFile = "skint.json"

// Load reads a ledger snapshot from path. A missing file yields a fresh
// ledger, not an error. Fields absent from older snapshots keep their
// defaults and the result is normalized before use.
func Load(path string) (*ledger.Ledger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	l := ledger.New()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}
	l.Normalize()
	return l, nil
}

// Save writes the ledger snapshot to path. The write goes to a temp file
// in the same directory and is renamed into place so a crash mid-write
// cannot truncate the previous snapshot.
func Save(path string, l *ledger.Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".skint-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing data file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}
