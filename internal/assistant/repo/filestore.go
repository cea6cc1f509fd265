package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	errx "github.com/Voxform-core-poc-v1/server/internal/core/error"
	logx "github.com/Voxform-core-poc-v1/server/pkg/logger"
)

// pathLocks serializes read-modify-rewrite cycles per store file so two
// sessions finalizing into the same store cannot lose each other's entries,
// even across separate FileStore values.
var pathLocks sync.Map // path -> *sync.Mutex

// FileStore keeps an append-only sequence of JSON records in a single file
// holding one JSON array. The whole array is loaded and rewritten on each
// append; writes go through a temp file plus rename so a failed write never
// truncates what was stored before.
type FileStore struct {
	path string
}

// NewFileStore opens a store backed by the given file path. The file is only
// created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path, used as the storage identifier in
// finalize results.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) lock() *sync.Mutex {
	v, _ := pathLocks.LoadOrStore(s.path, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Append adds one record to the store and returns the resulting entry count.
// An unreadable or malformed existing file degrades to an empty store with a
// warning; a write failure leaves the previous file contents untouched.
func (s *FileStore) Append(entry any) (int, error) {
	mu := s.lock()
	mu.Lock()
	defer mu.Unlock()

	entries := s.readRaw()

	raw, err := json.Marshal(entry)
	if err != nil {
		return 0, fmt.Errorf("marshal store entry: %w", err)
	}
	entries = append(entries, raw)

	buf, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal store contents: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logx.Error().Err(err).Str("path", s.path).Msg("failed to create store directory")
		return 0, errx.WrapStore(err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		logx.Error().Err(err).Str("path", s.path).Msg("failed to write store temp file")
		return 0, errx.WrapStore(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logx.Warn().Err(rmErr).Str("path", tmp).Msg("failed to clean up store temp file")
		}
		logx.Error().Err(err).Str("path", s.path).Msg("failed to replace store file")
		return 0, errx.WrapStore(err)
	}

	return len(entries), nil
}

// readRaw loads the current entries without decoding them. Missing files are
// an empty store; unreadable or non-array content degrades to empty with a
// warning rather than failing the session.
func (s *FileStore) readRaw() []json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Warn().Err(err).Str("path", s.path).Msg("failed to read store file, treating as empty")
		}
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		logx.Warn().Err(err).Str("path", s.path).Msg("store file is not a JSON array, treating as empty")
		return nil
	}
	return entries
}

// LoadEntries decodes every stored record as T, in append order. Records that
// no longer decode as T are skipped with a warning so one bad entry cannot
// hide the rest of the log.
func LoadEntries[T any](s *FileStore) []T {
	mu := s.lock()
	mu.Lock()
	raw := s.readRaw()
	mu.Unlock()

	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var entry T
		if err := json.Unmarshal(r, &entry); err != nil {
			logx.Warn().Err(err).Str("path", s.path).Int("index", i).Msg("skipping undecodable store entry")
			continue
		}
		out = append(out, entry)
	}
	return out
}
