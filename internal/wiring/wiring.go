// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/libtarget/internal/adapters/assets"
	_ "go.trai.ch/libtarget/internal/adapters/cas"
	_ "go.trai.ch/libtarget/internal/adapters/config"
	_ "go.trai.ch/libtarget/internal/adapters/fs"
	_ "go.trai.ch/libtarget/internal/adapters/logger"
	_ "go.trai.ch/libtarget/internal/adapters/manifest"
	_ "go.trai.ch/libtarget/internal/adapters/shell"
	_ "go.trai.ch/libtarget/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/libtarget/internal/adapters/watcher"
	_ "go.trai.ch/libtarget/internal/adapters/webpack"
	// Register app and engine nodes.
	_ "go.trai.ch/libtarget/internal/app"
	_ "go.trai.ch/libtarget/internal/engine/libconfig"
)
