package webpack_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/webpack"
	"go.trai.ch/libtarget/internal/core/domain"
)

func testProject() *domain.Project {
	return &domain.Project{
		Root:      "/project",
		Settings:  domain.DefaultSettings(),
		Toolchain: domain.DefaultToolchain("/project"),
	}
}

func TestProvider_Base(t *testing.T) {
	p := webpack.NewProvider()
	project := testProject()

	cfg, err := p.Base(context.Background(), project, domain.GlobalOptions{
		Dest:       "lib",
		ExtractCSS: true,
		SourceMap:  true,
	}, domain.LibraryBuildContext())
	require.NoError(t, err)

	assert.Equal(t, webpack.ModeProduction, cfg.Mode)
	assert.Equal(t, "/project", cfg.Context)
	assert.Equal(t, filepath.Join("/project", "lib"), cfg.Output.Path)
	assert.Equal(t, filepath.Join("/project", "src"), cfg.Resolve.Alias[webpack.SourceAlias])
	assert.True(t, cfg.Optimization.Minimize)
	require.NotNil(t, cfg.Plugins.ExtractCSS)
	require.NotNil(t, cfg.Plugins.Define)
	assert.Equal(t, `"production"`, cfg.Plugins.Define.Definitions[webpack.EnvDefine])
	assert.Nil(t, cfg.Plugins.DemoHTML)
	assert.Equal(t, domain.InlineLimitUnbounded, cfg.Assets.InlineLimit)
	assert.Equal(t, webpack.DefaultDevtool, cfg.Devtool)
}

func TestProvider_Base_Defaults(t *testing.T) {
	p := webpack.NewProvider()

	cfg, err := p.Base(context.Background(), testProject(), domain.GlobalOptions{}, domain.BuildContext{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/project", domain.DefaultDest), cfg.Output.Path)
	assert.Nil(t, cfg.Plugins.ExtractCSS)
	assert.Empty(t, cfg.Devtool)
	assert.Equal(t, webpack.AppInlineLimit, cfg.Assets.InlineLimit)
}

func TestProvider_Base_Independent(t *testing.T) {
	p := webpack.NewProvider()
	project := testProject()
	opts := domain.GlobalOptions{ExtractCSS: true}

	first, err := p.Base(context.Background(), project, opts, domain.LibraryBuildContext())
	require.NoError(t, err)
	second, err := p.Base(context.Background(), project, opts, domain.LibraryBuildContext())
	require.NoError(t, err)

	first.Resolve.Alias["x"] = "y"
	first.Plugins.ExtractCSS.Filename = "changed.css"
	first.Plugins.Define.Definitions["X"] = "1"

	assert.NotContains(t, second.Resolve.Alias, "x")
	assert.NotEqual(t, "changed.css", second.Plugins.ExtractCSS.Filename)
	assert.NotContains(t, second.Plugins.Define.Definitions, "X")
}

func TestProvider_Materialize(t *testing.T) {
	p := webpack.NewProvider()
	project := testProject()
	publicPath := "/cdn/"
	project.Settings.Configure = domain.Customization{
		Devtool: "eval",
		Alias:   map[string]string{"utils": "src/utils"},
		Define:  map[string]string{"__DEV__": "false"},
		Output: domain.OutputOverrides{
			Path:       "out",
			Filename:   "custom.js",
			PublicPath: &publicPath,
			Library:    "Custom",
		},
	}

	base, err := p.Base(context.Background(), project, domain.GlobalOptions{}, domain.LibraryBuildContext())
	require.NoError(t, err)

	out := p.Materialize(project, base)

	assert.Equal(t, "eval", out.Devtool)
	assert.Equal(t, filepath.Join("/project", "src", "utils"), out.Resolve.Alias["utils"])
	assert.Equal(t, "false", out.Plugins.Define.Definitions["__DEV__"])
	assert.Equal(t, `"production"`, out.Plugins.Define.Definitions[webpack.EnvDefine])
	assert.Equal(t, filepath.Join("/project", "out"), out.Output.Path)
	assert.Equal(t, "custom.js", out.Output.Filename)
	assert.Equal(t, "/cdn/", out.Output.PublicPath)
	assert.Equal(t, "Custom", out.Output.Library)

	assert.NotContains(t, base.Resolve.Alias, "utils", "materialize must not touch the base")
	assert.NotContains(t, base.Plugins.Define.Definitions, "__DEV__")
}
