// Package jsonfile persists the document as a single JSON file on disk,
// replaced atomically on every write.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"budgetd/internal/budget"
)

// Store reads and writes the whole document at a fixed path. It takes no
// lock: concurrent saves race and the last writer wins, which is the
// documented consistency model for this tool.
type Store struct {
	path string
}

// New builds a store for path, creating the parent directory if needed.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Load returns the persisted document, or the default empty document when
// nothing has been written yet.
func (s *Store) Load(_ context.Context) (budget.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return budget.DefaultDocument(), nil
	}
	if err != nil {
		return budget.Document{}, fmt.Errorf("read data file: %w", err)
	}
	var doc budget.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return budget.Document{}, fmt.Errorf("parse data file: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// Save serializes the full document to a temporary sibling file and renames
// it into place, so a crash mid-write never leaves a truncated primary file.
func (s *Store) Save(_ context.Context, doc budget.Document) error {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
