package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal project state directory.
	StateDirName = ".libtarget"

	// StoreFileName is the name of the manifest fingerprint store.
	StoreFileName = "manifests.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "libtarget.yaml"

	// PackageFileName is the name of the package manifest read for the library name.
	PackageFileName = "package.json"

	// DefaultEntry is the conventional entry used when none is specified.
	DefaultEntry = "src/App.vue"

	// DefaultDest is the default output directory.
	DefaultDest = "dist"

	// DefaultSourceDir is the directory aliased as "@" and watched in watch mode.
	DefaultSourceDir = "src"

	// ConfigPlaceholder is replaced with the manifest path in the bundler command.
	ConfigPlaceholder = "{config}"

	// ManifestSuffix is appended to the entry key of every emitted manifest.
	ManifestSuffix = ".config.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the manifest store path relative to the project root.
// It joins .libtarget and manifests.json.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreFileName)
}

// ManifestFileName returns the manifest file name for an entry key.
func ManifestFileName(entryKey string) string {
	return entryKey + ManifestSuffix
}
