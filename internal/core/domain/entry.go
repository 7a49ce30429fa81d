package domain

// ComponentExt is the extension of single-file component templates.
const ComponentExt = ".vue"

// EntryKind classifies the library entry. It decides the export shape of the
// bundle and which demo template is used.
type EntryKind int

const (
	// EntryKindScript is a plain script module. Its whole namespace is exported.
	EntryKindScript EntryKind = iota
	// EntryKindComponent is a single-file component. Only its default export is exposed.
	EntryKindComponent
)

// String returns the string representation of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntryKindComponent:
		return "component"
	default:
		return "script"
	}
}

// Entry is a validated library entry.
type Entry struct {
	// Path is the entry as requested, relative to the project root.
	Path string
	// AbsPath is the resolved absolute path of the entry file.
	AbsPath string
	// Kind is decided once by the resolver and threaded through composition.
	Kind EntryKind
}

// IsDefault reports whether the entry is the conventional default entry.
func (e Entry) IsDefault() bool {
	return e.Path == DefaultEntry
}
