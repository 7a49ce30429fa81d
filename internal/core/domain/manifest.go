package domain

import "time"

// ManifestInfo records the last manifest written for an entry key.
type ManifestInfo struct {
	EntryKey    string    `json:"entry_key,omitzero"`
	Path        string    `json:"path,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// EmittedManifest is a configuration handed to the bundler through a file.
type EmittedManifest struct {
	// EntryKey is the name of the configuration it was written for.
	EntryKey string
	// Path is the absolute path of the manifest file.
	Path string
	// Fingerprint identifies the configuration content.
	Fingerprint string
	// Unchanged is set when an identical manifest was already on disk.
	Unchanged bool
}
