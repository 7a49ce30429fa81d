package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/assets"
	"go.trai.ch/libtarget/internal/core/domain"
)

func TestInstaller_Install(t *testing.T) {
	root := t.TempDir()
	tc := domain.DefaultToolchain(root)

	require.NoError(t, assets.NewInstaller().Install(tc))

	wrapper, err := os.ReadFile(tc.WrapperModule)
	require.NoError(t, err)
	assert.Contains(t, string(wrapper), "~entry")

	for _, path := range []string{
		filepath.Join(tc.TemplateDir, assets.PublicPathModule),
		tc.DemoTemplate(domain.EntryKindComponent),
		tc.DemoTemplate(domain.EntryKindScript),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestInstaller_RefreshesManagedFiles(t *testing.T) {
	root := t.TempDir()
	tc := domain.DefaultToolchain(root)
	installer := assets.NewInstaller()

	require.NoError(t, installer.Install(tc))
	require.NoError(t, os.WriteFile(tc.WrapperModule, []byte("stale"), 0o600))
	require.NoError(t, installer.Install(tc))

	wrapper, err := os.ReadFile(tc.WrapperModule)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(wrapper))
}

func TestInstaller_KeepsUserTemplates(t *testing.T) {
	root := t.TempDir()
	tc := domain.DefaultToolchain(root)
	tc.TemplateDir = filepath.Join(root, "templates")

	custom := tc.DemoTemplate(domain.EntryKindComponent)
	require.NoError(t, os.MkdirAll(tc.TemplateDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(custom, []byte("<custom/>"), 0o600))

	require.NoError(t, assets.NewInstaller().Install(tc))

	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "<custom/>", string(data))

	_, err = os.Stat(tc.DemoTemplate(domain.EntryKindScript))
	assert.NoError(t, err, "missing templates are still created")
}
