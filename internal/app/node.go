package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/adapters/assets"              //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/adapters/manifest"            //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/adapters/shell"               //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/adapters/watcher"             //nolint:depguard // Wired in app layer
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/libtarget/internal/engine/libconfig"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			libconfig.NodeID,
			assets.NodeID,
			manifest.EmitterNodeID,
			manifest.RendererNodeID,
			shell.NodeID,
			watcher.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	orchestrator, err := graft.Dep[*libconfig.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.RuntimeInstaller](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.BundlerRunner](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, orchestrator, installer, emitter, renderer, runner, w, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
