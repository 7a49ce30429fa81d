// Package libconfig derives the bundler configurations of a library build.
package libconfig

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

// EntryResolver validates and classifies the library entry.
type EntryResolver struct {
	fs ports.FileSystem
}

// NewEntryResolver creates a new EntryResolver backed by the given file system.
func NewEntryResolver(fs ports.FileSystem) *EntryResolver {
	return &EntryResolver{fs: fs}
}

// Resolve confirms that entryPath, relative to root, names an existing file and
// classifies it by extension.
func (r *EntryResolver) Resolve(root, entryPath string) (domain.Entry, error) {
	abs := entryPath
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, entryPath)
	}

	info, err := r.fs.Stat(abs)
	if err != nil || info.IsDir() {
		return domain.Entry{}, entryNotFound(entryPath)
	}

	return domain.Entry{
		Path:    entryPath,
		AbsPath: abs,
		Kind:    classify(entryPath),
	}, nil
}

func classify(entryPath string) domain.EntryKind {
	if filepath.Ext(entryPath) == domain.ComponentExt {
		return domain.EntryKindComponent
	}
	return domain.EntryKindScript
}

func entryNotFound(entryPath string) error {
	isDefault := entryPath == domain.DefaultEntry
	marker := ""
	if isDefault {
		marker = " (default)"
	}
	err := zerr.Wrap(domain.ErrEntryNotFound, fmt.Sprintf(
		"failed to resolve lib entry: %s%s. Make sure to specify the correct entry file.",
		entryPath, marker,
	))
	err = zerr.With(err, "entry", entryPath)
	return zerr.With(err, "default", isDefault)
}
