package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/libtarget/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in app layer
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/zerr"
)

// watch rebuilds whenever a relevant file below the project root changes.
// The project is reloaded before every rebuild so edits to the configuration
// file or package.json take effect. Failures are logged and watching continues.
func (a *App) watch(ctx context.Context, opts BuildOptions, project *domain.Project, req domain.BuildRequest) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ignored := ignoredDirs(project, req)
	if err := a.watcher.Start(ctx, project.Root, ignored); err != nil {
		return zerr.Wrap(domain.ErrWatchFailed, err.Error())
	}
	defer func() { _ = a.watcher.Stop() }()

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case trigger <- paths:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	a.logger.Info("watching " + project.Root + " for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			changed := relevant(paths, ignored)
			if len(changed) == 0 {
				continue
			}
			a.logger.Info("change detected: " + relative(project.Root, changed[0]))

			reloaded, err := a.loader.Load(a.cwd)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			project = reloaded
			req = request(project, opts.Entry, opts.Name, opts.Dest)
			ignored = ignoredDirs(project, req)

			if err := a.build(ctx, project, req, false); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// ignoredDirs are the directories whose changes never trigger a rebuild:
// the output directory, the state directory and the installed runtime files.
func ignoredDirs(project *domain.Project, req domain.BuildRequest) []string {
	dest := req.Options.Dest
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(project.Root, dest)
	}
	return []string{
		dest,
		filepath.Join(project.Root, domain.StateDirName),
		project.Toolchain.TemplateDir,
	}
}

func relevant(paths, ignored []string) []string {
	var out []string
	for _, p := range paths {
		if !isIgnored(p, ignored) {
			out = append(out, p)
		}
	}
	return out
}

func isIgnored(path string, dirs []string) bool {
	for _, dir := range dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
