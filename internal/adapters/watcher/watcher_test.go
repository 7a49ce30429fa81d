package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/fs"
	"go.trai.ch/libtarget/internal/adapters/watcher"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/libtarget/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, domain.DirPerm))

	w, err := watcher.NewWatcher(fs.NewWalker(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, root, nil))

	target := filepath.Join(src, "App.vue")
	require.NoError(t, os.WriteFile(target, []byte("<template/>"), 0o600))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Path == target {
				assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for watch event")
		}
	}
}

func TestWatcher_SkipsIgnoredDirs(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	src := filepath.Join(root, "src")
	dist := filepath.Join(root, "dist")
	require.NoError(t, os.MkdirAll(src, domain.DirPerm))
	require.NoError(t, os.MkdirAll(dist, domain.DirPerm))

	w, err := watcher.NewWatcher(fs.NewWalker(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, root, []string{dist}))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dist, "MyLib.umd.js"), []byte("x"), 0o600))
	target := filepath.Join(src, "App.vue")
	require.NoError(t, os.WriteFile(target, []byte("<template/>"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			assert.False(t, strings.HasPrefix(ev.Path, dist+string(filepath.Separator)), ev.Path)
			if ev.Path == target {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for watch event")
		}
	}
}
