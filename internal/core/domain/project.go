package domain

import "path/filepath"

const (
	// ComponentDemoTemplate is the demo page template for component entries.
	ComponentDemoTemplate = "demo-lib.html"
	// ScriptDemoTemplate is the demo page template for script entries.
	ScriptDemoTemplate = "demo-lib-js.html"
	// WrapperModuleName is the generated module every variant enters through.
	WrapperModuleName = "entry-lib.js"
	// RuntimeDirName holds the installed wrapper module and demo templates.
	RuntimeDirName = "runtime"
)

// Project is the library project a derivation runs against.
type Project struct {
	// Root is the absolute project root. Entry paths are relative to it.
	Root string
	// PackageName is the name declared in package.json, empty when absent.
	PackageName string
	// Settings are the values read from libtarget.yaml.
	Settings Settings
	// Toolchain locates the files the host ships alongside the derived configs.
	Toolchain Toolchain
}

// Settings are the project-level defaults from the configuration file.
// Command line flags take precedence over every field.
type Settings struct {
	Entry         string
	Name          string
	Dest          string
	ExtractCSS    bool
	SourceMap     bool
	TemplateDir   string
	WrapperModule string
	// Bundler is the argv run once per emitted manifest. "{config}" is
	// replaced with the manifest path.
	Bundler   []string
	Configure Customization
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() Settings {
	return Settings{
		Entry:      DefaultEntry,
		Dest:       DefaultDest,
		ExtractCSS: true,
	}
}

// Customization is the user-level hook applied when a configuration is
// materialized. Output identity fields it sets are overridden afterwards.
type Customization struct {
	Devtool string
	Alias   map[string]string
	Define  map[string]string
	Output  OutputOverrides
}

// OutputOverrides are the output fields a user may customize.
type OutputOverrides struct {
	Path          string
	Filename      string
	ChunkFilename string
	PublicPath    *string
	Library       string
}

// Toolchain points at the wrapper module and the demo templates.
type Toolchain struct {
	TemplateDir   string
	WrapperModule string
}

// DefaultToolchain returns the toolchain installed under the project state directory.
func DefaultToolchain(root string) Toolchain {
	dir := filepath.Join(root, StateDirName, RuntimeDirName)
	return Toolchain{
		TemplateDir:   dir,
		WrapperModule: filepath.Join(dir, WrapperModuleName),
	}
}

// DemoTemplate returns the demo template path for the entry kind.
func (t Toolchain) DemoTemplate(kind EntryKind) string {
	if kind == EntryKindComponent {
		return filepath.Join(t.TemplateDir, ComponentDemoTemplate)
	}
	return filepath.Join(t.TemplateDir, ScriptDemoTemplate)
}
