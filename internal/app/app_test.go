package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"path/filepath"
	"testing"
	"testing/fstest"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/fs"
	"go.trai.ch/libtarget/internal/adapters/telemetry"
	"go.trai.ch/libtarget/internal/adapters/telemetry/progrock"
	"go.trai.ch/libtarget/internal/adapters/webpack"
	"go.trai.ch/libtarget/internal/app"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/libtarget/internal/core/ports/mocks"
	"go.trai.ch/libtarget/internal/engine/libconfig"
	"go.uber.org/mock/gomock"
)

const root = "/project"

type testMocks struct {
	loader    *mocks.MockProjectLoader
	installer *mocks.MockRuntimeInstaller
	emitter   *mocks.MockEmitter
	renderer  *mocks.MockRenderer
	runner    *mocks.MockBundlerRunner
	watcher   *mocks.MockWatcher
	logger    *mocks.MockLogger

	infos []string
}

func setup(t *testing.T) (*app.App, *testMocks) {
	t.Helper()
	return setupWith(t, telemetry.NewNoop())
}

func setupWith(t *testing.T, tel ports.Telemetry) (*app.App, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &testMocks{
		loader:    mocks.NewMockProjectLoader(ctrl),
		installer: mocks.NewMockRuntimeInstaller(ctrl),
		emitter:   mocks.NewMockEmitter(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
		runner:    mocks.NewMockBundlerRunner(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		m.infos = append(m.infos, msg)
	}).AnyTimes()

	fsys := fs.NewMapFSAdapter(root, fstest.MapFS{
		"src/App.vue": {Data: []byte("<template/>")},
		"src/lib.js":  {Data: []byte("export default 1")},
	})
	deriver := libconfig.NewOrchestrator(fsys, webpack.NewProvider(), tel, domain.LibraryBuildContext())

	a := app.New(m.loader, deriver, m.installer, m.emitter, m.renderer, m.runner, m.watcher, tel, m.logger)
	return a, m
}

func testProject() *domain.Project {
	return &domain.Project{
		Root:        root,
		PackageName: "my-lib",
		Settings:    domain.DefaultSettings(),
		Toolchain:   domain.DefaultToolchain(root),
	}
}

func manifestsFor(configs []domain.ResolvedBuildConfig) []domain.EmittedManifest {
	out := make([]domain.EmittedManifest, 0, len(configs))
	for _, c := range configs {
		out = append(out, domain.EmittedManifest{
			EntryKey: c.Name,
			Path:     filepath.Join(root, "dist", domain.ManifestFileName(c.Name)),
		})
	}
	return out
}

func emitManifests(
	_ context.Context, _, _ string, configs []domain.ResolvedBuildConfig, _ bool,
) ([]domain.EmittedManifest, error) {
	return manifestsFor(configs), nil
}

func names(configs []domain.ResolvedBuildConfig) []string {
	out := make([]string, 0, len(configs))
	for _, c := range configs {
		out = append(out, c.Name)
	}
	return out
}

func TestApp_Build(t *testing.T) {
	a, m := setup(t)
	project := testProject()

	var emitted []domain.ResolvedBuildConfig
	m.loader.EXPECT().Load(".").Return(project, nil)
	m.installer.EXPECT().Install(project.Toolchain).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), root, domain.DefaultDest, gomock.Len(3), false).
		DoAndReturn(func(ctx context.Context, r, d string, configs []domain.ResolvedBuildConfig, f bool) ([]domain.EmittedManifest, error) {
			emitted = configs
			return emitManifests(ctx, r, d, configs, f)
		})

	err := a.Build(context.Background(), app.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"my-lib.common", "my-lib.umd", "my-lib.umd.min"}, names(emitted))
}

func TestApp_Build_FlagsOverrideSettings(t *testing.T) {
	a, m := setup(t)
	project := testProject()
	project.Settings.Name = "FromConfig"
	project.Settings.Dest = "out"

	m.loader.EXPECT().Load(".").Return(project, nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), root, "lib", gomock.Any(), true).
		DoAndReturn(func(ctx context.Context, r, d string, configs []domain.ResolvedBuildConfig, f bool) ([]domain.EmittedManifest, error) {
			assert.Equal(t, []string{"MyLib.common", "MyLib.umd", "MyLib.umd.min"}, names(configs))
			assert.Empty(t, configs[0].Output.LibraryExport)
			return emitManifests(ctx, r, d, configs, f)
		})

	err := a.Build(context.Background(), app.BuildOptions{
		Entry: "src/lib.js",
		Name:  "MyLib",
		Dest:  "lib",
		Force: true,
	})
	require.NoError(t, err)
}

func TestApp_Build_SettingsOverrideDefaults(t *testing.T) {
	a, m := setup(t)
	project := testProject()
	project.Settings.Entry = "src/lib.js"
	project.Settings.Name = "FromConfig"
	project.Settings.Dest = "out"

	m.loader.EXPECT().Load(".").Return(project, nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), root, "out", gomock.Any(), false).
		DoAndReturn(func(ctx context.Context, r, d string, configs []domain.ResolvedBuildConfig, f bool) ([]domain.EmittedManifest, error) {
			assert.Equal(t, "FromConfig.common", configs[0].Name)
			return emitManifests(ctx, r, d, configs, f)
		})

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
}

func TestApp_Build_MissingEntry(t *testing.T) {
	a, m := setup(t)

	m.loader.EXPECT().Load(".").Return(testProject(), nil)

	err := a.Build(context.Background(), app.BuildOptions{Entry: "src/nope.js"})
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestApp_Build_LoadError(t *testing.T) {
	a, m := setup(t)

	m.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigParseFailed)

	err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Build_RunsBundlerPerManifest(t *testing.T) {
	a, m := setup(t)
	project := testProject()
	project.Settings.Bundler = []string{"webpack", "--config", "{config}"}

	m.loader.EXPECT().Load(".").Return(project, nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitManifests)

	var ran []string
	m.runner.EXPECT().Run(gomock.Any(), root, project.Settings.Bundler, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []string, manifest domain.EmittedManifest) error {
			ran = append(ran, manifest.EntryKey)
			return nil
		}).Times(3)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	assert.Equal(t, []string{"my-lib.common", "my-lib.umd", "my-lib.umd.min"}, ran)
}

func TestApp_Build_BundlerFailureStops(t *testing.T) {
	a, m := setup(t)
	project := testProject()
	project.Settings.Bundler = []string{"webpack"}
	boom := errors.New("boom")

	m.loader.EXPECT().Load(".").Return(project, nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitManifests)
	m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, boom)
}

func TestApp_Build_ReportsSteps(t *testing.T) {
	a, m := setupWith(t, progrock.New())

	m.loader.EXPECT().Load(".").Return(testProject(), nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitManifests)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	assert.Contains(t, m.infos, "3 steps completed, 0 cached, 0 failed")
}

func TestApp_Build_ReportsFailedStep(t *testing.T) {
	a, m := setupWith(t, progrock.New())
	project := testProject()
	project.Settings.Bundler = []string{"webpack"}
	boom := errors.New("boom")

	m.loader.EXPECT().Load(".").Return(project, nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitManifests)
	gomock.InOrder(
		m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom),
	)

	require.ErrorIs(t, a.Build(context.Background(), app.BuildOptions{}), boom)
	assert.Equal(t, "4 steps completed, 0 cached, 1 failed", m.infos[len(m.infos)-1])
}

func TestApp_Build_InstallError(t *testing.T) {
	a, m := setup(t)
	boom := errors.New("disk full")

	m.loader.EXPECT().Load(".").Return(testProject(), nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(boom)

	err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, boom)
}

func TestApp_Build_WorkingDir(t *testing.T) {
	a, m := setup(t)
	a.WithWorkingDir("/elsewhere")

	m.loader.EXPECT().Load("/elsewhere").Return(nil, domain.ErrProjectRootFailed)

	err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrProjectRootFailed)
}

func TestApp_Inspect(t *testing.T) {
	a, m := setup(t)

	m.loader.EXPECT().Load(".").Return(testProject(), nil)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Len(3), "json").
		DoAndReturn(func(w io.Writer, configs []domain.ResolvedBuildConfig, _ string) error {
			_, err := io.WriteString(w, configs[0].Name)
			return err
		})

	var buf bytes.Buffer
	err := a.Inspect(context.Background(), app.InspectOptions{Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "my-lib.common", buf.String())
}

func TestApp_Inspect_MissingEntry(t *testing.T) {
	a, m := setup(t)

	m.loader.EXPECT().Load(".").Return(testProject(), nil)

	err := a.Inspect(context.Background(), app.InspectOptions{Entry: "src/nope.vue"}, &bytes.Buffer{})
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestApp_Build_Watch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		a, m := setup(t)
		a.WithDebounceWindow(50 * time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events := func(yield func(ports.WatchEvent) bool) {
			for _, p := range []string{
				filepath.Join(root, "dist", "my-lib.common.js"),
				filepath.Join(root, domain.StateDirName, domain.StoreFileName),
				filepath.Join(root, "src", "App.vue"),
			} {
				if !yield(ports.WatchEvent{Path: p, Operation: ports.OpWrite}) {
					return
				}
			}
		}

		renamed := testProject()
		renamed.PackageName = "renamed-lib"
		gomock.InOrder(
			m.loader.EXPECT().Load(".").Return(testProject(), nil),
			m.loader.EXPECT().Load(".").Return(renamed, nil),
		)
		m.installer.EXPECT().Install(gomock.Any()).Return(nil).Times(2)
		m.watcher.EXPECT().Start(gomock.Any(), root, []string{
			filepath.Join(root, domain.DefaultDest),
			filepath.Join(root, domain.StateDirName),
			filepath.Join(root, domain.StateDirName, domain.RuntimeDirName),
		}).Return(nil)
		m.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](events))
		m.watcher.EXPECT().Stop().Return(nil)
		var rebuilt []domain.ResolvedBuildConfig
		gomock.InOrder(
			m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(emitManifests),
			m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).
				DoAndReturn(func(c context.Context, r, d string, configs []domain.ResolvedBuildConfig, f bool) ([]domain.EmittedManifest, error) {
					rebuilt = configs
					cancel()
					return emitManifests(c, r, d, configs, f)
				}),
		)

		err := a.Build(ctx, app.BuildOptions{Watch: true, Force: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"renamed-lib.common", "renamed-lib.umd", "renamed-lib.umd.min"}, names(rebuilt))
		assert.Contains(t, m.infos, "change detected: src/App.vue")
	})
}

func TestApp_Build_WatchStartFails(t *testing.T) {
	a, m := setup(t)

	m.loader.EXPECT().Load(".").Return(testProject(), nil)
	m.installer.EXPECT().Install(gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitManifests)
	m.watcher.EXPECT().Start(gomock.Any(), root, gomock.Any()).Return(errors.New("too many files"))

	err := a.Build(context.Background(), app.BuildOptions{Watch: true})
	require.ErrorIs(t, err, domain.ErrWatchFailed)
}

func TestApp_Build_WatchReloadFails(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		a, m := setup(t)
		a.WithDebounceWindow(50 * time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events := func(yield func(ports.WatchEvent) bool) {
			yield(ports.WatchEvent{Path: filepath.Join(root, "package.json"), Operation: ports.OpWrite})
		}

		gomock.InOrder(
			m.loader.EXPECT().Load(".").Return(testProject(), nil),
			m.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigParseFailed),
		)
		m.installer.EXPECT().Install(gomock.Any()).Return(nil)
		m.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitManifests)
		m.watcher.EXPECT().Start(gomock.Any(), root, gomock.Any()).Return(nil)
		m.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](events))
		m.watcher.EXPECT().Stop().Return(nil)
		m.logger.EXPECT().Error(domain.ErrConfigParseFailed).Do(func(error) { cancel() })

		require.NoError(t, a.Build(ctx, app.BuildOptions{Watch: true}))
	})
}
