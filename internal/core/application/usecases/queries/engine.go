// Package queries contains read operations for retrieving system state.
// Live state is copied out of the assignment engine on its own goroutine;
// persisted history is read straight from the database.
package queries

import (
	"context"

	"warehouse/internal/core/application/engine"
)

// EngineReader runs read-only functions on the engine goroutine.
//
// Implemented by *engine.Runner.
type EngineReader interface {
	Query(ctx context.Context, fn engine.QueryFunc) error
}
