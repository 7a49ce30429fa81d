package manifest_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/cas"
	"go.trai.ch/libtarget/internal/adapters/fs"
	"go.trai.ch/libtarget/internal/adapters/manifest"
	"go.trai.ch/libtarget/internal/adapters/telemetry"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newWriter() *manifest.Writer {
	return manifest.NewWriter(fs.NewHasher(), cas.NewStore(), telemetry.NewNoop())
}

func TestWriter_Emit(t *testing.T) {
	root := t.TempDir()
	configs := sampleConfigs()

	emitted, err := newWriter().Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)
	require.Len(t, emitted, len(configs))

	for i, m := range emitted {
		assert.Equal(t, configs[i].Name, m.EntryKey)
		assert.Equal(t, filepath.Join(root, "dist", configs[i].Name+".config.json"), m.Path)
		assert.NotEmpty(t, m.Fingerprint)
		assert.False(t, m.Unchanged)

		data, err := os.ReadFile(m.Path)
		require.NoError(t, err)

		var got domain.ResolvedBuildConfig
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, configs[i].Name, got.Name)
		assert.Equal(t, configs[i].Output, got.Output)
	}
}

func TestWriter_Emit_SkipsUnchanged(t *testing.T) {
	root := t.TempDir()
	writer := newWriter()
	configs := sampleConfigs()

	_, err := writer.Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)

	second, err := writer.Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)
	for _, m := range second {
		assert.True(t, m.Unchanged, m.EntryKey)
	}

	forced, err := writer.Emit(context.Background(), root, "dist", configs, true)
	require.NoError(t, err)
	for _, m := range forced {
		assert.False(t, m.Unchanged, m.EntryKey)
	}
}

func TestWriter_Emit_RewritesDeletedManifest(t *testing.T) {
	root := t.TempDir()
	writer := newWriter()
	configs := sampleConfigs()

	first, err := writer.Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)
	require.NoError(t, os.Remove(first[0].Path))

	second, err := writer.Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)
	assert.False(t, second[0].Unchanged)
	assert.True(t, second[1].Unchanged)

	_, err = os.Stat(first[0].Path)
	assert.NoError(t, err)
}

func TestWriter_Emit_FingerprintFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockHasher(ctrl)
	store := mocks.NewMockManifestStore(ctrl)

	failure := errors.New("hash failed")
	hasher.EXPECT().Fingerprint(gomock.Any()).Return("", failure).AnyTimes()

	writer := manifest.NewWriter(hasher, store, telemetry.NewNoop())
	emitted, err := writer.Emit(context.Background(), t.TempDir(), "dist", sampleConfigs(), false)

	require.ErrorIs(t, err, failure)
	assert.Nil(t, emitted)
}

func TestWriter_Emit_ScopedName(t *testing.T) {
	root := t.TempDir()
	configs := sampleConfigs()
	for i := range configs {
		configs[i].Name = "@acme/ui." + configs[i].Variant.Postfix
	}

	writer := newWriter()
	emitted, err := writer.Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)
	require.Len(t, emitted, len(configs))

	for i, m := range emitted {
		want := filepath.Join(root, "dist", "@acme", "ui."+configs[i].Variant.Postfix+".config.json")
		assert.Equal(t, want, m.Path)
		_, err := os.Stat(m.Path)
		require.NoError(t, err)
	}

	second, err := writer.Emit(context.Background(), root, "dist", configs, false)
	require.NoError(t, err)
	for _, m := range second {
		assert.True(t, m.Unchanged, m.EntryKey)
	}
}
