// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation of round trips without
// adding hard dependencies on specific observability backends. Consumers
// register hooks at startup to receive an event before and after each stage
// (load, save, reload) and once per completed run.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRoundTripHooks(&myHooks{})
//	    // ... run application
//	}
//
// The runner calls hooks to emit events:
//
//	observability.RoundTrip().OnStageStart(ctx, observability.StageLoad, path)
//	// ... load ...
//	observability.RoundTrip().OnStageComplete(ctx, observability.StageLoad, path, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names passed to hooks.
const (
	StageLoad   = "load"
	StageSave   = "save"
	StageReload = "reload"
)

// =============================================================================
// Round-Trip Hooks
// =============================================================================

// RoundTripHooks receives events from the round-trip runner.
type RoundTripHooks interface {
	// OnStageStart is called before a stage touches the file.
	OnStageStart(ctx context.Context, stage, path string)

	// OnStageComplete is called after a stage. size is the number of bytes
	// written by the save stage and zero otherwise.
	OnStageComplete(ctx context.Context, stage, path string, size int, duration time.Duration, err error)

	// OnRunComplete is called once a full round trip has finished.
	// consistent reports whether the reloaded record matched the written one.
	OnRunComplete(ctx context.Context, path string, consistent bool, duration time.Duration)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopRoundTripHooks is a no-op implementation of RoundTripHooks.
type NoopRoundTripHooks struct{}

func (NoopRoundTripHooks) OnStageStart(context.Context, string, string) {}
func (NoopRoundTripHooks) OnStageComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopRoundTripHooks) OnRunComplete(context.Context, string, bool, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	roundTripHooks RoundTripHooks = NoopRoundTripHooks{}
	hooksMu        sync.RWMutex
)

// SetRoundTripHooks registers custom round-trip hooks.
// This should be called once at application startup before any round trip.
// A nil argument is ignored.
func SetRoundTripHooks(h RoundTripHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		roundTripHooks = h
	}
}

// RoundTrip returns the registered round-trip hooks.
func RoundTrip() RoundTripHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return roundTripHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	roundTripHooks = NoopRoundTripHooks{}
}
