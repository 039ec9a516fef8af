// Package memstore persists the memory document as a single JSON file.
// Loads never fail: a missing or corrupt file yields the empty document
// shape. Saves are best-effort: write errors are logged and swallowed so
// the request that triggered them still succeeds.
package memstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"log/slog"

	"pal/internal/core"
)

// Store serializes every load/mutate/save cycle behind one mutex. The
// document is process-wide shared state; without this, overlapping requests
// would silently drop each other's writes. Cross-process access is not
// coordinated.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document's file path.
func (s *Store) Path() string {
	return s.path
}

// Update loads the document, applies fn, and persists the result, all under
// the store lock.
func (s *Store) Update(fn func(doc *core.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	fn(doc)
	s.save(doc)
}

// View loads a fresh document and passes it to fn without persisting.
func (s *Store) View(fn func(doc *core.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.load())
}

func (s *Store) load() *core.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Memory document unreadable, starting empty",
				"component", "memory", "doc_path", s.path, "error", err)
		}
		return core.NewDocument()
	}

	doc := core.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		slog.Warn("Memory document corrupt, starting empty",
			"component", "memory", "doc_path", s.path, "error", err)
		return core.NewDocument()
	}
	doc.EnsureShape()
	return doc
}

func (s *Store) save(doc *core.Document) {
	data, err := json.Marshal(doc)
	if err != nil {
		slog.Error("Failed to marshal memory document",
			"component", "memory", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		slog.Error("Failed to create memory document directory",
			"component", "memory", "doc_path", s.path, "error", err)
		return
	}

	// Write-then-rename keeps a crashed save from truncating the document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		slog.Error("Failed to write memory document",
			"component", "memory", "doc_path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		slog.Error("Failed to replace memory document",
			"component", "memory", "doc_path", s.path, "error", err)
	}
}
