package domain

import "math"

// InlineLimitUnbounded embeds every static asset regardless of size.
const InlineLimitUnbounded int64 = math.MaxInt64

// BuildRequest is the immutable input of a library derivation.
type BuildRequest struct {
	// EntryPath is the library entry relative to the project root.
	EntryPath string
	// LibraryName overrides the derived library name when non-empty.
	LibraryName string
	// Options are forwarded to the base configuration provider untouched.
	Options GlobalOptions
}

// GlobalOptions are host build options that the derivation core does not interpret.
type GlobalOptions struct {
	// Dest is the output directory relative to the project root.
	Dest string
	// ExtractCSS controls whether component styles are extracted into a stylesheet.
	ExtractCSS bool
	// SourceMap enables source maps in the emitted bundles.
	SourceMap bool
}

// BuildContext carries the process-wide build toggles. The host builds it once
// before any variant is composed and nothing inside the derivation changes it.
type BuildContext struct {
	// LibraryMode disables application-only configuration branches.
	LibraryMode bool
	// InlineLimit is the size in bytes under which static assets are inlined.
	InlineLimit int64
}

// LibraryBuildContext returns the context of a library build: library mode on
// and every asset inlined, since a library has no asset-serving path.
func LibraryBuildContext() BuildContext {
	return BuildContext{
		LibraryMode: true,
		InlineLimit: InlineLimitUnbounded,
	}
}
