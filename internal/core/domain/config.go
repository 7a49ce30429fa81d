package domain

import (
	"maps"
	"slices"
)

// OutputSpec describes where and how bundles are written.
type OutputSpec struct {
	Path          string `json:"path,omitempty" yaml:"path,omitempty"`
	Library       string `json:"library,omitempty" yaml:"library,omitempty"`
	LibraryExport string `json:"libraryExport,omitempty" yaml:"libraryExport,omitempty"`
	LibraryTarget Format `json:"libraryTarget,omitempty" yaml:"libraryTarget,omitempty"`
	GlobalObject  string `json:"globalObject,omitempty" yaml:"globalObject,omitempty"`
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename" yaml:"chunkFilename"`
	PublicPath    string `json:"publicPath" yaml:"publicPath"`
}

// ResolveSpec holds module resolution settings.
type ResolveSpec struct {
	Alias      map[string]string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Extensions []string          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// ExternalAlias names a dependency the consumer provides, once per resolution path.
type ExternalAlias struct {
	CommonJS  string `json:"commonjs" yaml:"commonjs"`
	CommonJS2 string `json:"commonjs2" yaml:"commonjs2"`
	Root      string `json:"root" yaml:"root"`
}

// Optimization holds the minification policy.
type Optimization struct {
	Minimize bool `json:"minimize" yaml:"minimize"`
}

// AssetRules holds the static asset handling of the build.
type AssetRules struct {
	// InlineLimit is the size in bytes under which assets are embedded.
	InlineLimit int64 `json:"inlineLimit" yaml:"inlineLimit"`
}

// ExtractCSSPlugin extracts component styles into a stylesheet.
type ExtractCSSPlugin struct {
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename" yaml:"chunkFilename"`
}

// HTMLPagePlugin renders an HTML page from a template.
type HTMLPagePlugin struct {
	Template string `json:"template" yaml:"template"`
	Filename string `json:"filename" yaml:"filename"`
	Inject   bool   `json:"inject" yaml:"inject"`
	LibName  string `json:"libName" yaml:"libName"`
}

// DefinePlugin replaces identifiers with constant expressions at build time.
type DefinePlugin struct {
	Definitions map[string]string `json:"definitions" yaml:"definitions"`
}

// PluginSlots is the fixed set of plugin registrations a configuration may carry.
// A nil slot means the plugin is not registered.
type PluginSlots struct {
	ExtractCSS *ExtractCSSPlugin `json:"extractCss,omitempty" yaml:"extractCss,omitempty"`
	DemoHTML   *HTMLPagePlugin   `json:"demoHtml,omitempty" yaml:"demoHtml,omitempty"`
	Define     *DefinePlugin     `json:"define,omitempty" yaml:"define,omitempty"`
}

func (p PluginSlots) clone() PluginSlots {
	var out PluginSlots
	if p.ExtractCSS != nil {
		v := *p.ExtractCSS
		out.ExtractCSS = &v
	}
	if p.DemoHTML != nil {
		v := *p.DemoHTML
		out.DemoHTML = &v
	}
	if p.Define != nil {
		out.Define = &DefinePlugin{Definitions: maps.Clone(p.Define.Definitions)}
	}
	return out
}

func (r ResolveSpec) clone() ResolveSpec {
	return ResolveSpec{
		Alias:      maps.Clone(r.Alias),
		Extensions: slices.Clone(r.Extensions),
	}
}

// BaseConfig is the intermediate configuration a variant is composed from.
// It is a value: every With method returns an independent copy and leaves the
// receiver untouched, so compositions started from separate bases never share state.
type BaseConfig struct {
	Mode         string
	Context      string
	Entry        map[string]string
	Output       OutputSpec
	Resolve      ResolveSpec
	Externals    map[string]ExternalAlias
	Optimization Optimization
	Plugins      PluginSlots
	Assets       AssetRules
	Devtool      string
}

// Clone returns a deep copy of the configuration.
func (c BaseConfig) Clone() BaseConfig {
	out := c
	out.Entry = maps.Clone(c.Entry)
	out.Resolve = c.Resolve.clone()
	out.Externals = maps.Clone(c.Externals)
	out.Plugins = c.Plugins.clone()
	return out
}

// WithExtractCSSFilename sets the stylesheet name of the extract-css slot.
// Without a registered slot the configuration is returned unchanged.
func (c BaseConfig) WithExtractCSSFilename(filename string) BaseConfig {
	if c.Plugins.ExtractCSS == nil {
		return c
	}
	out := c.Clone()
	out.Plugins.ExtractCSS.Filename = filename
	return out
}

// WithMinimize sets the minification policy.
func (c BaseConfig) WithMinimize(enabled bool) BaseConfig {
	out := c.Clone()
	out.Optimization.Minimize = enabled
	return out
}

// WithExternal declares id as provided by the consumer.
func (c BaseConfig) WithExternal(id string, alias ExternalAlias) BaseConfig {
	out := c.Clone()
	if out.Externals == nil {
		out.Externals = make(map[string]ExternalAlias, 1)
	}
	out.Externals[id] = alias
	return out
}

// WithDemoPage registers the demo page slot.
func (c BaseConfig) WithDemoPage(page HTMLPagePlugin) BaseConfig {
	out := c.Clone()
	out.Plugins.DemoHTML = &page
	return out
}

// WithAlias registers a resolvable module alias.
func (c BaseConfig) WithAlias(id, target string) BaseConfig {
	out := c.Clone()
	if out.Resolve.Alias == nil {
		out.Resolve.Alias = make(map[string]string, 1)
	}
	out.Resolve.Alias[id] = target
	return out
}

// Resolved materializes the configuration into its final form.
func (c BaseConfig) Resolved() ResolvedBuildConfig {
	cp := c.Clone()
	return ResolvedBuildConfig{
		Mode:         cp.Mode,
		Context:      cp.Context,
		Entry:        cp.Entry,
		Output:       cp.Output,
		Resolve:      cp.Resolve,
		Externals:    cp.Externals,
		Optimization: cp.Optimization,
		Plugins:      cp.Plugins,
		Assets:       cp.Assets,
		Devtool:      cp.Devtool,
	}
}

// ResolvedBuildConfig is the bundler configuration of one variant.
// Name is the entry key, "<library>.<postfix>".
type ResolvedBuildConfig struct {
	Name         string                   `json:"name" yaml:"name"`
	Mode         string                   `json:"mode" yaml:"mode"`
	Context      string                   `json:"context" yaml:"context"`
	Entry        map[string]string        `json:"entry" yaml:"entry"`
	Output       OutputSpec               `json:"output" yaml:"output"`
	Resolve      ResolveSpec              `json:"resolve" yaml:"resolve"`
	Externals    map[string]ExternalAlias `json:"externals" yaml:"externals"`
	Optimization Optimization             `json:"optimization" yaml:"optimization"`
	Plugins      PluginSlots              `json:"plugins" yaml:"plugins"`
	Assets       AssetRules               `json:"assets" yaml:"assets"`
	Devtool      string                   `json:"devtool,omitempty" yaml:"devtool,omitempty"`
	Variant      Variant                  `json:"variant" yaml:"variant"`
}

// Clone returns a deep copy of the configuration.
func (c ResolvedBuildConfig) Clone() ResolvedBuildConfig {
	out := c
	out.Entry = maps.Clone(c.Entry)
	out.Resolve = c.Resolve.clone()
	out.Externals = maps.Clone(c.Externals)
	out.Plugins = c.Plugins.clone()
	return out
}
