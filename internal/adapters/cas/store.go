// Package cas implements the manifest fingerprint store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using one flat JSON file per project
// root, located at <root>/.libtarget/manifests.json.
type Store struct {
	mu    sync.Mutex
	cache map[string]map[string]domain.ManifestInfo
}

// NewStore creates a new empty Store. Project files are loaded on first use.
func NewStore() *Store {
	return &Store{
		cache: make(map[string]map[string]domain.ManifestInfo),
	}
}

func storePath(root string) string {
	return filepath.Join(root, domain.DefaultStorePath())
}

// entries returns the cached entries of root, loading them if needed.
// The caller must hold s.mu.
func (s *Store) entries(root string) (map[string]domain.ManifestInfo, error) {
	if entries, ok := s.cache[root]; ok {
		return entries, nil
	}

	path := storePath(root)
	entries := make(map[string]domain.ManifestInfo)

	//nolint:gosec // Path is derived from the project root
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
	case len(data) > 0:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", path)
		}
	}

	s.cache[root] = entries
	return entries, nil
}

func (s *Store) save(root string, entries map[string]domain.ManifestInfo) error {
	path := storePath(root)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	if err := renameio.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	return nil
}

// Get retrieves the manifest info for an entry key of the project at root.
func (s *Store) Get(root, entryKey string) (*domain.ManifestInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.entries(root)
	if err != nil {
		return nil, err
	}

	info, ok := entries[entryKey]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the manifest info and persists the project's store file.
func (s *Store) Put(root string, info domain.ManifestInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.entries(root)
	if err != nil {
		return err
	}

	entries[info.EntryKey] = info
	return s.save(root, entries)
}
