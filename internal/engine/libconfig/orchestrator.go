package libconfig

import (
	"context"

	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
)

// Orchestrator expands a build request into the configurations of every variant.
type Orchestrator struct {
	resolver  *EntryResolver
	provider  ports.BaseConfigProvider
	composer  *Composer
	telemetry ports.Telemetry
	bctx      domain.BuildContext
}

// NewOrchestrator creates a new Orchestrator. bctx is established by the host
// before the first derivation and is forwarded untouched to the provider.
func NewOrchestrator(
	fs ports.FileSystem,
	provider ports.BaseConfigProvider,
	telemetry ports.Telemetry,
	bctx domain.BuildContext,
) *Orchestrator {
	return &Orchestrator{
		resolver:  NewEntryResolver(fs),
		provider:  provider,
		composer:  NewComposer(provider),
		telemetry: telemetry,
		bctx:      bctx,
	}
}

// Derive returns one resolved configuration per variant, in variant order.
// On failure it returns no configurations at all.
func (o *Orchestrator) Derive(
	ctx context.Context,
	project *domain.Project,
	req domain.BuildRequest,
) ([]domain.ResolvedBuildConfig, error) {
	entry, err := o.resolver.Resolve(project.Root, req.EntryPath)
	if err != nil {
		return nil, err
	}

	name := LibraryName(req.LibraryName, project.PackageName, entry.Path)
	variants := Variants()
	configs := make([]domain.ResolvedBuildConfig, 0, len(variants))

	for _, v := range variants {
		cfg, err := o.deriveVariant(ctx, project, req, Input{
			Project:     project,
			Entry:       entry,
			LibraryName: name,
			Variant:     v,
		})
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

func (o *Orchestrator) deriveVariant(
	ctx context.Context,
	project *domain.Project,
	req domain.BuildRequest,
	in Input,
) (domain.ResolvedBuildConfig, error) {
	ctx, vertex := o.telemetry.Record(ctx, "derive "+in.Variant.EntryKey(in.LibraryName))

	base, err := o.provider.Base(ctx, project, req.Options, o.bctx)
	if err != nil {
		vertex.Complete(err)
		return domain.ResolvedBuildConfig{}, err
	}

	cfg := o.composer.Compose(base, in)
	vertex.Log(domain.LogLevelDebug, "format "+string(in.Variant.Format)+", entry "+in.Entry.Kind.String())
	vertex.Complete(nil)

	return cfg, nil
}
