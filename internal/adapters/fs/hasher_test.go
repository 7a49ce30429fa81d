package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/fs"
	"go.trai.ch/libtarget/internal/core/domain"
)

func TestHasher_Fingerprint(t *testing.T) {
	hasher := fs.NewHasher()

	cfg := domain.ResolvedBuildConfig{
		Name:  "MyLib.umd",
		Mode:  "production",
		Entry: map[string]string{"MyLib.umd": "/runtime/entry-lib.js"},
		Externals: map[string]domain.ExternalAlias{
			"vue": {CommonJS: "vue", CommonJS2: "vue", Root: "Vue"},
		},
	}

	first, err := hasher.Fingerprint(&cfg)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	clone := cfg.Clone()
	second, err := hasher.Fingerprint(&clone)
	require.NoError(t, err)
	assert.Equal(t, first, second, "equal configs should hash equally")

	clone.Optimization.Minimize = true
	third, err := hasher.Fingerprint(&clone)
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "changed config should change the fingerprint")
}
