package libconfig

import (
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
)

const (
	// EntryAlias is the module id the wrapper module imports the user's entry through.
	EntryAlias = "~entry"
	// RuntimeModule is the framework runtime every variant leaves to the consumer.
	RuntimeModule = "vue"
	// DemoFilename is the name of the generated preview page.
	DemoFilename = "demo.html"
	// DefaultExport is the accessor exposing a component's default export.
	DefaultExport = "default"
	// GlobalObject evaluates to the global scope in browsers and workers as
	// well as in non-browser runtimes.
	GlobalObject = "typeof self !== 'undefined' ? self : this"
)

// RuntimeExternal is the alias set under which consumers provide the framework runtime.
var RuntimeExternal = domain.ExternalAlias{
	CommonJS:  "vue",
	CommonJS2: "vue",
	Root:      "Vue",
}

// Input is everything the composer needs for one variant.
type Input struct {
	Project     *domain.Project
	Entry       domain.Entry
	LibraryName string
	Variant     domain.Variant
}

type rule func(domain.BaseConfig, Input) domain.BaseConfig

// rules run in order. Later rules win where two write the same field.
var rules = []rule{
	cssFilename,
	minification,
	externalize,
	demoPage,
	entryAlias,
}

// Composer turns one base configuration into the resolved configuration of a variant.
type Composer struct {
	provider ports.BaseConfigProvider
}

// NewComposer creates a new Composer materializing through the given provider.
func NewComposer(provider ports.BaseConfigProvider) *Composer {
	return &Composer{provider: provider}
}

// Compose applies the shared and variant-specific rules to base and finalizes
// the result. It never fails; a rule whose plugin slot is absent is skipped.
func (c *Composer) Compose(base domain.BaseConfig, in Input) domain.ResolvedBuildConfig {
	cfg := base
	for _, apply := range rules {
		cfg = apply(cfg, in)
	}
	return finalize(c.provider.Materialize(in.Project, cfg), in)
}

func cssFilename(cfg domain.BaseConfig, in Input) domain.BaseConfig {
	return cfg.WithExtractCSSFilename(in.LibraryName + ".css")
}

func minification(cfg domain.BaseConfig, in Input) domain.BaseConfig {
	return cfg.WithMinimize(in.Variant.Minified())
}

func externalize(cfg domain.BaseConfig, _ Input) domain.BaseConfig {
	return cfg.WithExternal(RuntimeModule, RuntimeExternal)
}

func demoPage(cfg domain.BaseConfig, in Input) domain.BaseConfig {
	if !in.Variant.GeneratesDemoPage {
		return cfg
	}
	return cfg.WithDemoPage(domain.HTMLPagePlugin{
		Template: in.Project.Toolchain.DemoTemplate(in.Entry.Kind),
		Filename: DemoFilename,
		Inject:   false,
		LibName:  in.LibraryName,
	})
}

func entryAlias(cfg domain.BaseConfig, in Input) domain.BaseConfig {
	return cfg.WithAlias(EntryAlias, in.Entry.AbsPath)
}

// finalize forces the output identity of the variant over anything the user
// customization may have set.
func finalize(cfg domain.ResolvedBuildConfig, in Input) domain.ResolvedBuildConfig {
	key := in.Variant.EntryKey(in.LibraryName)

	cfg.Name = key
	cfg.Variant = in.Variant
	cfg.Entry = map[string]string{key: in.Project.Toolchain.WrapperModule}

	cfg.Output.Library = in.LibraryName
	cfg.Output.LibraryExport = ""
	if in.Entry.Kind == domain.EntryKindComponent {
		cfg.Output.LibraryExport = DefaultExport
	}
	cfg.Output.LibraryTarget = in.Variant.Format
	cfg.Output.GlobalObject = GlobalObject
	cfg.Output.Filename = key + ".js"
	cfg.Output.ChunkFilename = key + ".[name].js"
	cfg.Output.PublicPath = ""

	return cfg
}
