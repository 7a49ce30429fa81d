package ports

import (
	"context"

	"go.trai.ch/libtarget/internal/core/domain"
)

// BundlerRunner invokes the external bundler on an emitted manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type BundlerRunner interface {
	// Run executes command in dir with "{config}" replaced by the manifest path.
	Run(ctx context.Context, dir string, command []string, manifest domain.EmittedManifest) error
}
