package domain

import "go.trai.ch/zerr"

var (
	// ErrEntryNotFound is returned when the library entry does not resolve to an existing file.
	ErrEntryNotFound = zerr.New("entry not found")

	// ErrProjectRootFailed is returned when the project root path cannot be determined.
	ErrProjectRootFailed = zerr.New("failed to get absolute path of project root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPackageParseFailed is returned when package.json exists but cannot be parsed.
	ErrPackageParseFailed = zerr.New("failed to parse package.json")

	// ErrBaseConfigFailed is returned when the base configuration cannot be produced.
	ErrBaseConfigFailed = zerr.New("failed to resolve base configuration")

	// ErrInvalidOutputFormat is returned when an unknown inspect format is requested.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'yaml' or 'json'")

	// ErrStoreReadFailed is returned when the manifest store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read manifest store")

	// ErrStoreUnmarshalFailed is returned when the manifest store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal manifest store")

	// ErrStoreMarshalFailed is returned when the manifest store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal manifest store")

	// ErrStoreWriteFailed is returned when the manifest store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write manifest store")

	// ErrFingerprintFailed is returned when a configuration fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to fingerprint configuration")

	// ErrManifestEncodeFailed is returned when a configuration cannot be encoded.
	ErrManifestEncodeFailed = zerr.New("failed to encode configuration")

	// ErrManifestWriteFailed is returned when a manifest file cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrBundlerFailed is returned when the configured bundler command exits with an error.
	ErrBundlerFailed = zerr.New("bundler command failed")

	// ErrWatchFailed is returned when the project cannot be watched for changes.
	ErrWatchFailed = zerr.New("failed to watch project")
)
