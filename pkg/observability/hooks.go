// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about experiment execution, cache operations, and oracle
// traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExperimentHooks(&myExperimentHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Experiment().OnJumpStart(ctx, level, x, y, charge, direction)
//	// ... drive the oracle ...
//	observability.Experiment().OnJumpComplete(ctx, level, x, y, converged, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Experiment Hooks
// =============================================================================

// ExperimentHooks receives events from jump experiments and sweeps.
type ExperimentHooks interface {
	// Jump events
	OnJumpStart(ctx context.Context, level int, x, y float64, charge int, direction string)
	OnJumpComplete(ctx context.Context, level int, x, y float64, converged bool, duration time.Duration, err error)

	// Sweep events
	OnSweepStart(ctx context.Context, experiments int)
	OnSweepComplete(ctx context.Context, records int, duration time.Duration, err error)

	// Expansion events
	OnLayerStart(ctx context.Context, layer, frontierSize int)
	OnLayerComplete(ctx context.Context, layer, records, nextFrontier int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Oracle Hooks
// =============================================================================

// OracleHooks receives events from oracle adapters.
type OracleHooks interface {
	// OnConfigure records an oracle reset.
	OnConfigure(ctx context.Context, level int, x, y float64)

	// OnAdvance records a batch of simulation ticks.
	OnAdvance(ctx context.Context, frames int, command string)

	// OnError records an oracle failure (connection loss, protocol error).
	OnError(ctx context.Context, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExperimentHooks is a no-op implementation of ExperimentHooks.
type NoopExperimentHooks struct{}

func (NoopExperimentHooks) OnJumpStart(context.Context, int, float64, float64, int, string) {}
func (NoopExperimentHooks) OnJumpComplete(context.Context, int, float64, float64, bool, time.Duration, error) {
}
func (NoopExperimentHooks) OnSweepStart(context.Context, int)                            {}
func (NoopExperimentHooks) OnSweepComplete(context.Context, int, time.Duration, error)   {}
func (NoopExperimentHooks) OnLayerStart(context.Context, int, int)                       {}
func (NoopExperimentHooks) OnLayerComplete(context.Context, int, int, int, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopOracleHooks is a no-op implementation of OracleHooks.
type NoopOracleHooks struct{}

func (NoopOracleHooks) OnConfigure(context.Context, int, float64, float64) {}
func (NoopOracleHooks) OnAdvance(context.Context, int, string)             {}
func (NoopOracleHooks) OnError(context.Context, string, error)             {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	experimentHooks ExperimentHooks = NoopExperimentHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	oracleHooks     OracleHooks     = NoopOracleHooks{}
	hooksMu         sync.RWMutex
)

// SetExperimentHooks registers custom experiment hooks.
// This should be called once at application startup before any experiments run.
func SetExperimentHooks(h ExperimentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		experimentHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetOracleHooks registers custom oracle hooks.
// This should be called once at application startup before any oracle traffic.
func SetOracleHooks(h OracleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		oracleHooks = h
	}
}

// Experiment returns the registered experiment hooks.
func Experiment() ExperimentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return experimentHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Oracle returns the registered oracle hooks.
func Oracle() OracleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return oracleHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	experimentHooks = NoopExperimentHooks{}
	cacheHooks = NoopCacheHooks{}
	oracleHooks = NoopOracleHooks{}
}
