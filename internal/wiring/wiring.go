// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/unify/internal/adapters/config"
	_ "go.trai.ch/unify/internal/adapters/fs"
	_ "go.trai.ch/unify/internal/adapters/genpkg"
	_ "go.trai.ch/unify/internal/adapters/logger"
	_ "go.trai.ch/unify/internal/adapters/state"
	_ "go.trai.ch/unify/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/unify/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/unify/internal/app"
	_ "go.trai.ch/unify/internal/engine/unifier"
)
