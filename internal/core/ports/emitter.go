package ports

import (
	"context"
	"io"

	"go.trai.ch/libtarget/internal/core/domain"
)

// Emitter hands resolved configurations to the bundler by writing manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit writes one manifest per configuration under dest and returns them
	// in the order of configs. Unchanged manifests are not rewritten unless force is set.
	Emit(ctx context.Context, root, dest string, configs []domain.ResolvedBuildConfig, force bool) ([]domain.EmittedManifest, error)
}

// Renderer prints resolved configurations without writing any file.
type Renderer interface {
	// Render writes the configurations to w in the given format ("yaml" or "json").
	Render(w io.Writer, configs []domain.ResolvedBuildConfig, format string) error
}

// RuntimeInstaller places the wrapper module and demo templates the derived
// configurations reference.
type RuntimeInstaller interface {
	// Install writes the runtime files into the toolchain directories.
	Install(toolchain domain.Toolchain) error
}
