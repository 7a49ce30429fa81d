package domain

import "strings"

// MinifiedMarker marks the postfix of the variant that is minified.
const MinifiedMarker = ".min"

// Format is the module format a variant is emitted as.
type Format string

const (
	// FormatCommonJS2 emits a Node-style module assigned to module.exports.
	FormatCommonJS2 Format = "commonjs2"
	// FormatUMD emits a universal module usable from loaders and script tags.
	FormatUMD Format = "umd"
)

// Variant describes one target module format of a library build.
type Variant struct {
	Format            Format `json:"format" yaml:"format"`
	Postfix           string `json:"postfix" yaml:"postfix"`
	GeneratesDemoPage bool   `json:"generatesDemoPage" yaml:"generatesDemoPage"`
}

// Minified reports whether the variant is the minified one.
// The check is a substring match on the postfix.
func (v Variant) Minified() bool {
	return strings.Contains(v.Postfix, MinifiedMarker)
}

// EntryKey returns the entry chunk name for the given library name.
func (v Variant) EntryKey(libraryName string) string {
	return libraryName + "." + v.Postfix
}
