package libconfig

import (
	"path/filepath"
	"strings"
)

// LibraryName resolves the public library identifier.
// An explicit override wins over the package name, which wins over the entry
// file name without its extension.
func LibraryName(override, packageName, entryPath string) string {
	if override != "" {
		return override
	}
	if packageName != "" {
		return packageName
	}
	base := filepath.Base(entryPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
