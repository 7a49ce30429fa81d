// Package app implements the application layer for libtarget.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/libtarget/internal/adapters/watcher" //nolint:depguard // Debounce window default
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
)

// Deriver expands a build request into the configurations of every variant.
type Deriver interface {
	Derive(ctx context.Context, project *domain.Project, req domain.BuildRequest) ([]domain.ResolvedBuildConfig, error)
}

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	deriver   Deriver
	installer ports.RuntimeInstaller
	emitter   ports.Emitter
	renderer  ports.Renderer
	runner    ports.BundlerRunner
	watcher   ports.Watcher
	telemetry ports.Telemetry
	logger    ports.Logger

	cwd            string
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	deriver Deriver,
	installer ports.RuntimeInstaller,
	emitter ports.Emitter,
	renderer ports.Renderer,
	runner ports.BundlerRunner,
	w ports.Watcher,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:         loader,
		deriver:        deriver,
		installer:      installer,
		emitter:        emitter,
		renderer:       renderer,
		runner:         runner,
		watcher:        w,
		telemetry:      telemetry,
		logger:         log,
		cwd:            ".",
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithWorkingDir sets the directory the project is loaded from.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// WithDebounceWindow sets how long watch mode waits for changes to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Entry string
	Name  string
	Dest  string
	Watch bool
	Force bool
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	Entry  string
	Name   string
	Format string
}

// Build derives the configurations, writes their manifests and runs the
// configured bundler once per manifest. With Watch set it keeps rebuilding
// on source changes until ctx is canceled.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := a.loader.Load(a.cwd)
	if err != nil {
		return err
	}

	req := request(project, opts.Entry, opts.Name, opts.Dest)
	if err := a.build(ctx, project, req, opts.Force); err != nil {
		return err
	}

	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, opts, project, req)
}

func (a *App) build(ctx context.Context, project *domain.Project, req domain.BuildRequest, force bool) error {
	configs, err := a.deriver.Derive(ctx, project, req)
	if err != nil {
		return err
	}

	if err := a.installer.Install(project.Toolchain); err != nil {
		return err
	}

	manifests, err := a.emitter.Emit(ctx, project.Root, req.Options.Dest, configs, force)
	if err != nil {
		return err
	}

	written := 0
	for _, m := range manifests {
		if !m.Unchanged {
			written++
		}
	}
	a.logger.Info(fmt.Sprintf("%d configurations derived for %s (%d written, %d unchanged)",
		len(manifests), configs[0].Output.Library, written, len(manifests)-written))

	defer a.logSteps()

	if len(project.Settings.Bundler) == 0 {
		for _, m := range manifests {
			a.logger.Info(relative(project.Root, m.Path))
		}
		return nil
	}

	for _, m := range manifests {
		vctx, vertex := a.telemetry.Record(ctx, "bundle "+m.EntryKey)
		err := a.runner.Run(vctx, project.Root, project.Settings.Bundler, m)
		vertex.Complete(err)
		if err != nil {
			return err
		}
	}
	return nil
}

// logSteps reports the outcome of the recorded derive, emit and bundle steps.
func (a *App) logSteps() {
	completed, cached, failed := a.telemetry.Counts()
	a.logger.Info(fmt.Sprintf("%d steps completed, %d cached, %d failed", completed, cached, failed))
}

// Inspect derives the configurations and renders them to w without writing any file.
func (a *App) Inspect(ctx context.Context, opts InspectOptions, w io.Writer) error {
	project, err := a.loader.Load(a.cwd)
	if err != nil {
		return err
	}

	configs, err := a.deriver.Derive(ctx, project, request(project, opts.Entry, opts.Name, ""))
	if err != nil {
		return err
	}

	return a.renderer.Render(w, configs, opts.Format)
}

// Close releases the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// request merges command line values over the project settings.
func request(project *domain.Project, entry, name, dest string) domain.BuildRequest {
	s := project.Settings
	return domain.BuildRequest{
		EntryPath:   firstNonEmpty(entry, s.Entry, domain.DefaultEntry),
		LibraryName: firstNonEmpty(name, s.Name),
		Options: domain.GlobalOptions{
			Dest:       firstNonEmpty(dest, s.Dest, domain.DefaultDest),
			ExtractCSS: s.ExtractCSS,
			SourceMap:  s.SourceMap,
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
