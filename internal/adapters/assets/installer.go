// Package assets installs the runtime files the derived configurations reference.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

// PublicPathModule is imported by the wrapper module and must sit next to it.
const PublicPathModule = "setPublicPath.js"

//go:embed runtime
var runtimeFS embed.FS

var _ ports.RuntimeInstaller = (*Installer)(nil)

// Installer implements ports.RuntimeInstaller from files embedded in the binary.
type Installer struct {
	files fs.FS
}

// NewInstaller creates a new Installer.
func NewInstaller() *Installer {
	sub, err := fs.Sub(runtimeFS, "runtime")
	if err != nil {
		panic(err) // the embedded directory is fixed at build time
	}
	return &Installer{files: sub}
}

type target struct {
	name string
	path string
}

// Install writes the wrapper module, its public path helper and both demo
// templates. Files inside the project state directory are kept in sync with
// the embedded copies; user-provided files elsewhere are only created when missing.
func (i *Installer) Install(tc domain.Toolchain) error {
	wrapperDir := filepath.Dir(tc.WrapperModule)
	targets := []target{
		{domain.WrapperModuleName, tc.WrapperModule},
		{PublicPathModule, filepath.Join(wrapperDir, PublicPathModule)},
		{domain.ComponentDemoTemplate, tc.DemoTemplate(domain.EntryKindComponent)},
		{domain.ScriptDemoTemplate, tc.DemoTemplate(domain.EntryKindScript)},
	}

	for _, t := range targets {
		if err := i.install(t); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) install(t target) error {
	data, err := fs.ReadFile(i.files, t.name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "embedded runtime file missing"), "name", t.name)
	}

	//nolint:gosec // Path is derived from the project toolchain
	existing, err := os.ReadFile(t.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to read runtime file"), "path", t.path)
	case !managed(t.path) || bytes.Equal(existing, data):
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(t.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create runtime directory"), "path", t.path)
	}
	if err := renameio.WriteFile(t.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write runtime file"), "path", t.path)
	}
	return nil
}

// managed reports whether path lives inside a project state directory.
func managed(path string) bool {
	sep := string(filepath.Separator)
	return strings.Contains(path, sep+domain.StateDirName+sep)
}
