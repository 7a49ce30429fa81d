package ports

import "go.trai.ch/libtarget/internal/core/domain"

// Hasher defines the interface for fingerprinting resolved configurations.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable hash of the configuration content.
	Fingerprint(cfg *domain.ResolvedBuildConfig) (string, error)
}
