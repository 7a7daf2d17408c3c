package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

const (
	filePrefix = "linkedin_snapshot_"
	fileSuffix = ".json"
)

// FileStore persists one JSON file per snapshot under a directory,
// named linkedin_snapshot_<timestamp>.json. Writes go through a temp file
// and rename so a crash mid-write never leaves a partial snapshot.
type FileStore struct {
	dir string
}

// NewFileStore creates the snapshot directory if needed and returns a
// store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, &StoreError{Op: "open", Message: "snapshot directory is empty"}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StoreError{Op: "open", Message: "failed to create snapshot directory", Cause: err}
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the on-disk location for a snapshot id.
func (s *FileStore) Path(id string) string {
	return filepath.Join(s.dir, filePrefix+id+fileSuffix)
}

// Save writes the snapshot atomically. Overwriting an existing snapshot
// with different raw text is rejected.
func (s *FileStore) Save(ctx context.Context, snap *types.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return &StoreError{ID: snap.ID(), Op: "save", Message: "invalid snapshot", Cause: err}
	}

	if existing, err := s.Load(ctx, snap.ID()); err == nil {
		if existing.RawText != snap.RawText {
			return &ImmutableError{ID: snap.ID()}
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &StoreError{ID: snap.ID(), Op: "save", Message: "failed to marshal", Cause: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, filePrefix+"*.tmp")
	if err != nil {
		return &StoreError{ID: snap.ID(), Op: "save", Message: "failed to create temp file", Cause: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &StoreError{ID: snap.ID(), Op: "save", Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &StoreError{ID: snap.ID(), Op: "save", Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmpName, s.Path(snap.ID())); err != nil {
		_ = os.Remove(tmpName)
		return &StoreError{ID: snap.ID(), Op: "save", Message: "failed to rename temp file", Cause: err}
	}
	return nil
}

// Load reads one snapshot by id.
func (s *FileStore) Load(ctx context.Context, id string) (*types.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, &StoreError{ID: id, Op: "load", Cause: err}
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &StoreError{ID: id, Op: "load", Message: "invalid snapshot JSON", Cause: err}
	}
	return &snap, nil
}

// List returns all snapshot ids in timestamp order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
	}
	sort.Strings(ids)
	return ids, nil
}

// Walk streams snapshots in timestamp order.
func (s *FileStore) Walk(ctx context.Context, fn func(*types.Snapshot) error) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		snap, err := s.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("walk stopped at %s: %w", id, err)
		}
		if err := fn(snap); err != nil {
			return err
		}
	}
	return nil
}
