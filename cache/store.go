// Package cache keeps rendered grids on disk so that re-rendering an
// unchanged document is a file read.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const entryExt = ".json"

// Entry is one cached render.
type Entry struct {
	Output     string    `json:"output"`
	Rows       int       `json:"rows"`
	Columns    int       `json:"columns"`
	RenderedAt time.Time `json:"rendered_at"`
}

// Store is a directory of cached renders, one JSON file per key:
//
//	~/.cache/papergrid/
//	  3f2a...e1.json
//	  9bc0...47.json
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore opens the cache at dir, creating it with 0700 permissions.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Key derives a cache key from everything that affects a render.
func Key(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%d:", len(p))
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+entryExt)
}

// Lookup returns the entry stored under key and whether it is younger
// than ttl. A missing key yields nil, false, nil. Unreadable entries are
// removed and reported as a miss.
func (s *Store) Lookup(key string, ttl time.Duration) (*Entry, bool, error) {
	p := s.path(key)

	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: stat %s: %w", key, err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false, fmt.Errorf("cache: read %s: %w", key, err)
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.Warn("cache: dropping unreadable entry",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		_ = os.Remove(p)
		return nil, false, nil
	}

	return &e, time.Since(info.ModTime()) < ttl, nil
}

// Save stores e under key. The file is written to a temp name and renamed
// so readers never see a partial entry.
func (s *Store) Save(key string, e *Entry) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+key+"-*"+entryExt)
	if err != nil {
		return fmt.Errorf("cache: create temp for %s: %w", key, err)
	}
	name := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(name)
		}
	}()

	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: chmod temp for %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: write temp for %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache: close temp for %s: %w", key, err)
	}
	if err := os.Rename(name, s.path(key)); err != nil {
		return fmt.Errorf("cache: rename temp for %s: %w", key, err)
	}

	committed = true
	s.logger.Debug("cache: stored render", slog.String("key", key), slog.Int("bytes", len(e.Output)))
	return nil
}

// Age reports how long ago key was written, or 0 if it is absent.
func (s *Store) Age(key string) time.Duration {
	info, err := os.Stat(s.path(key))
	if err != nil {
		return 0
	}
	return time.Since(info.ModTime())
}

// Keys lists the stored keys. Temp files from in-flight writes are skipped.
func (s *Store) Keys() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".tmp-") || !strings.HasSuffix(name, entryExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, entryExt))
	}
	return keys
}

// Clear removes every file in the cache directory.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cache: clear read dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("cache: clear remove %s: %w", e.Name(), err)
		}
	}
	s.logger.Debug("cache: cleared", slog.String("dir", s.dir))
	return nil
}
