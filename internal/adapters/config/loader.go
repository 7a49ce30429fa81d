// Package config provides the project loader for libtarget.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader reading libtarget.yaml and package.json.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load reads the project rooted at cwd. Both files are optional.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectRootFailed, err.Error()), "cwd", cwd)
	}

	pkgName, err := l.loadPackageName(root)
	if err != nil {
		return nil, err
	}

	settings, err := l.loadSettings(root)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		Root:        root,
		PackageName: pkgName,
		Settings:    settings,
		Toolchain:   toolchain(root, settings),
	}, nil
}

func (l *Loader) loadPackageName(root string) (string, error) {
	path := filepath.Join(root, domain.PackageFileName)
	data, err := l.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPackageParseFailed, err.Error()), "path", path)
	}
	return pkg.Name, nil
}

func (l *Loader) loadSettings(root string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(root, domain.ConfigFileName)
	data, err := l.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Libfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if file.Entry != "" {
		settings.Entry = file.Entry
	}
	if file.Dest != "" {
		settings.Dest = file.Dest
	}
	if file.ExtractCSS != nil {
		settings.ExtractCSS = *file.ExtractCSS
	}
	settings.Name = file.Name
	settings.SourceMap = file.SourceMap
	settings.TemplateDir = file.TemplateDir
	settings.WrapperModule = file.WrapperModule
	settings.Bundler = file.Bundler
	settings.Configure = domain.Customization{
		Devtool: file.Configure.Devtool,
		Alias:   file.Configure.Alias,
		Define:  file.Configure.Define,
		Output: domain.OutputOverrides{
			Path:          file.Configure.Output.Path,
			Filename:      file.Configure.Output.Filename,
			ChunkFilename: file.Configure.Output.ChunkFilename,
			PublicPath:    file.Configure.Output.PublicPath,
			Library:       file.Configure.Output.Library,
		},
	}

	if len(settings.Bundler) > 0 && !slices.ContainsFunc(settings.Bundler, hasPlaceholder) {
		l.logger.Warn("bundler command has no " + domain.ConfigPlaceholder + " placeholder, the manifest path is appended")
	}

	return settings, nil
}

func hasPlaceholder(arg string) bool {
	return strings.Contains(arg, domain.ConfigPlaceholder)
}

func toolchain(root string, settings domain.Settings) domain.Toolchain {
	tc := domain.DefaultToolchain(root)
	if settings.TemplateDir != "" {
		tc.TemplateDir = absolute(root, settings.TemplateDir)
	}
	if settings.WrapperModule != "" {
		tc.WrapperModule = absolute(root, settings.WrapperModule)
	}
	return tc
}

func absolute(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
