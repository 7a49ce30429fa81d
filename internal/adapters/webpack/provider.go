// Package webpack provides the base bundler configuration for library builds.
package webpack

import (
	"context"
	"maps"
	"path/filepath"
	"strconv"

	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
)

const (
	// ModeProduction is the only mode a library build runs in.
	ModeProduction = "production"
	// SourceAlias resolves to the project source directory.
	SourceAlias = "@"
	// AppEntry is the placeholder entry of the base configuration.
	AppEntry = "app"
	// DefaultDevtool is used when source maps are enabled without a devtool override.
	DefaultDevtool = "source-map"
	// EnvDefine is the identifier replaced with the build mode.
	EnvDefine = "process.env.NODE_ENV"
	// AppInlineLimit is the asset inline threshold of application builds.
	AppInlineLimit int64 = 4096
)

// Extensions are the resolvable module extensions, in lookup order.
var Extensions = []string{".mjs", ".js", ".jsx", ".vue", ".json"}

var _ ports.BaseConfigProvider = (*Provider)(nil)

// Provider implements ports.BaseConfigProvider.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Base returns a fresh production configuration for the project.
func (p *Provider) Base(
	_ context.Context,
	project *domain.Project,
	opts domain.GlobalOptions,
	bctx domain.BuildContext,
) (domain.BaseConfig, error) {
	dest := opts.Dest
	if dest == "" {
		dest = domain.DefaultDest
	}

	cfg := domain.BaseConfig{
		Mode:    ModeProduction,
		Context: project.Root,
		Entry: map[string]string{
			AppEntry: filepath.Join(project.Root, domain.DefaultEntry),
		},
		Output: domain.OutputSpec{
			Path:          filepath.Join(project.Root, dest),
			Filename:      "[name].js",
			ChunkFilename: "[name].js",
			PublicPath:    "/",
		},
		Resolve: domain.ResolveSpec{
			Alias: map[string]string{
				SourceAlias: filepath.Join(project.Root, domain.DefaultSourceDir),
			},
			Extensions: append([]string(nil), Extensions...),
		},
		Optimization: domain.Optimization{Minimize: true},
		Plugins: domain.PluginSlots{
			Define: &domain.DefinePlugin{
				Definitions: map[string]string{EnvDefine: strconv.Quote(ModeProduction)},
			},
		},
		Assets: domain.AssetRules{InlineLimit: inlineLimit(bctx)},
	}

	if opts.ExtractCSS {
		cfg.Plugins.ExtractCSS = &domain.ExtractCSSPlugin{
			Filename:      "css/[name].css",
			ChunkFilename: "css/[name].css",
		}
	}
	if opts.SourceMap {
		cfg.Devtool = DefaultDevtool
	}

	return cfg, nil
}

// inlineLimit keeps the application threshold outside library mode.
func inlineLimit(bctx domain.BuildContext) int64 {
	if !bctx.LibraryMode && bctx.InlineLimit == 0 {
		return AppInlineLimit
	}
	return bctx.InlineLimit
}

// Materialize resolves cfg and applies the project's customization on top.
func (p *Provider) Materialize(project *domain.Project, cfg domain.BaseConfig) domain.ResolvedBuildConfig {
	out := cfg.Resolved()
	custom := project.Settings.Configure

	if custom.Devtool != "" {
		out.Devtool = custom.Devtool
	}
	for id, target := range custom.Alias {
		if out.Resolve.Alias == nil {
			out.Resolve.Alias = make(map[string]string, len(custom.Alias))
		}
		out.Resolve.Alias[id] = absolute(project.Root, target)
	}
	if len(custom.Define) > 0 {
		if out.Plugins.Define == nil {
			out.Plugins.Define = &domain.DefinePlugin{}
		}
		defs := maps.Clone(out.Plugins.Define.Definitions)
		if defs == nil {
			defs = make(map[string]string, len(custom.Define))
		}
		maps.Copy(defs, custom.Define)
		out.Plugins.Define.Definitions = defs
	}

	o := custom.Output
	if o.Path != "" {
		out.Output.Path = absolute(project.Root, o.Path)
	}
	if o.Filename != "" {
		out.Output.Filename = o.Filename
	}
	if o.ChunkFilename != "" {
		out.Output.ChunkFilename = o.ChunkFilename
	}
	if o.PublicPath != nil {
		out.Output.PublicPath = *o.PublicPath
	}
	if o.Library != "" {
		out.Output.Library = o.Library
	}

	return out
}

func absolute(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
