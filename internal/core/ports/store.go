package ports

import "go.trai.ch/libtarget/internal/core/domain"

// ManifestStore remembers the fingerprint of the last manifest written per entry key.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the manifest info for an entry key.
	// Returns nil, nil if not found.
	Get(root, entryKey string) (*domain.ManifestInfo, error)

	// Put stores the manifest info.
	Put(root string, info domain.ManifestInfo) error
}
