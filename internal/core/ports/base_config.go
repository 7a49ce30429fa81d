// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/libtarget/internal/core/domain"
)

// BaseConfigProvider supplies the shared bundler configuration every variant
// is composed from.
//
//go:generate go run go.uber.org/mock/mockgen -source=base_config.go -destination=mocks/mock_base_config.go -package=mocks
type BaseConfigProvider interface {
	// Base returns a fresh intermediate configuration. Values returned by
	// separate calls must not share any maps or plugin slots.
	Base(ctx context.Context, project *domain.Project, opts domain.GlobalOptions, bctx domain.BuildContext) (domain.BaseConfig, error)

	// Materialize turns an intermediate configuration into its resolved form,
	// applying the project's user-level customization.
	Materialize(project *domain.Project, cfg domain.BaseConfig) domain.ResolvedBuildConfig
}
