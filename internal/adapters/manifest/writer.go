// Package manifest hands resolved configurations to the bundler as files.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Emitter = (*Writer)(nil)

// Writer implements ports.Emitter writing one JSON manifest per configuration.
type Writer struct {
	hasher    ports.Hasher
	store     ports.ManifestStore
	telemetry ports.Telemetry
}

// NewWriter creates a new Writer.
func NewWriter(hasher ports.Hasher, store ports.ManifestStore, telemetry ports.Telemetry) *Writer {
	return &Writer{
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
	}
}

// Emit writes <dest>/<entryKey>.config.json for every configuration concurrently.
// A manifest whose fingerprint matches the stored one and which still exists
// on disk is left untouched unless force is set.
func (w *Writer) Emit(
	ctx context.Context,
	root, dest string,
	configs []domain.ResolvedBuildConfig,
	force bool,
) ([]domain.EmittedManifest, error) {
	dir := dest
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dest)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", dir)
	}

	results := make([]domain.EmittedManifest, len(configs))
	g, ctx := errgroup.WithContext(ctx)

	for i := range configs {
		g.Go(func() error {
			emitted, err := w.emitOne(ctx, root, dir, &configs[i], force)
			if err != nil {
				return err
			}
			results[i] = emitted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (w *Writer) emitOne(
	ctx context.Context,
	root, dir string,
	cfg *domain.ResolvedBuildConfig,
	force bool,
) (emitted domain.EmittedManifest, err error) {
	_, vertex := w.telemetry.Record(ctx, "emit "+cfg.Name)
	defer func() { vertex.Complete(err) }()

	if err := ctx.Err(); err != nil {
		return emitted, err
	}

	path := filepath.Join(dir, domain.ManifestFileName(cfg.Name))
	emitted = domain.EmittedManifest{EntryKey: cfg.Name, Path: path}

	fingerprint, err := w.hasher.Fingerprint(cfg)
	if err != nil {
		return emitted, err
	}
	emitted.Fingerprint = fingerprint

	if !force {
		unchanged, err := w.unchanged(root, path, cfg.Name, fingerprint)
		if err != nil {
			return emitted, err
		}
		if unchanged {
			vertex.Cached()
			emitted.Unchanged = true
			return emitted, nil
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return emitted, zerr.With(zerr.Wrap(domain.ErrManifestEncodeFailed, err.Error()), "entry_key", cfg.Name)
	}
	data = append(data, '\n')

	// Scoped names such as "@acme/ui" put the manifest in a subdirectory of dest.
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return emitted, zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", path)
	}
	if err := renameio.WriteFile(path, data, domain.FilePerm); err != nil {
		return emitted, zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", path)
	}
	vertex.Log(domain.LogLevelInfo, "wrote "+path)

	return emitted, w.store.Put(root, domain.ManifestInfo{
		EntryKey:    cfg.Name,
		Path:        path,
		Fingerprint: fingerprint,
		Timestamp:   time.Now(),
	})
}

func (w *Writer) unchanged(root, path, entryKey, fingerprint string) (bool, error) {
	prev, err := w.store.Get(root, entryKey)
	if err != nil {
		return false, err
	}
	if prev == nil || prev.Fingerprint != fingerprint || prev.Path != path {
		return false, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return true, nil
}
