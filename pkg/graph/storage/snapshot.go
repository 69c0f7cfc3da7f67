package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
)

// SnapshotStore persists materialized graphs outside the database, one
// document per graph name. Exported visualizations and run results go
// through this.
type SnapshotStore interface {
	Store(ctx context.Context, name string, v interface{}) error
	Load(ctx context.Context, name string, v interface{}) error
}

// JSONSnapshotStore implements SnapshotStore with one indented JSON file per
// graph under a base directory.
type JSONSnapshotStore struct {
	dir string
}

func NewJSONSnapshotStore(dir string) *JSONSnapshotStore {
	return &JSONSnapshotStore{dir: dir}
}

var snapshotNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func (s *JSONSnapshotStore) path(name string) string {
	clean := snapshotNameSanitizer.ReplaceAllString(name, "_")
	if clean == "" {
		clean = "graph"
	}
	return filepath.Join(s.dir, clean+".json")
}

// Store writes the value as indented JSON, creating the directory if
// needed.
func (s *JSONSnapshotStore) Store(ctx context.Context, name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrap(err, "creating snapshot directory")
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}
	return os.WriteFile(s.path(name), data, 0644)
}

// Load reads the named snapshot into v.
func (s *JSONSnapshotStore) Load(ctx context.Context, name string, v interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return errors.Wrap(err, "reading snapshot")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "decoding snapshot")
	}
	return nil
}
