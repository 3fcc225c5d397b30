// Package observability provides hooks for instrumenting a publish run.
//
// Libraries emit events through the registered hooks; the defaults are
// no-ops, so nothing is required to use the publish package. The CLI
// registers a logging implementation at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPublishHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Publish().OnFinalizeStart(ctx, runID, len(pubs))
//	// ... run deferred configuration ...
//	observability.Publish().OnFinalizeComplete(ctx, runID, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Publish Hooks
// =============================================================================

// PublishHooks receives events from the publishing orchestrator.
type PublishHooks interface {
	// Finalize events
	OnFinalizeStart(ctx context.Context, runID string, publications int)
	OnFinalizeComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// OnPublicationConfigured fires after artifacts and metadata are attached.
	OnPublicationConfigured(ctx context.Context, publication string, artifacts int)

	// OnRepositorySelected fires once per run with the chosen destination.
	OnRepositorySelected(ctx context.Context, url string, snapshot bool)

	// OnSigningSkipped fires when signing inputs are incomplete.
	OnSigningSkipped(ctx context.Context)

	// OnSigned fires once per signed publication.
	OnSigned(ctx context.Context, publication string, signatures int)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPublishHooks is a no-op implementation of PublishHooks.
type NoopPublishHooks struct{}

func (NoopPublishHooks) OnFinalizeStart(context.Context, string, int)                     {}
func (NoopPublishHooks) OnFinalizeComplete(context.Context, string, time.Duration, error) {}
func (NoopPublishHooks) OnPublicationConfigured(context.Context, string, int)             {}
func (NoopPublishHooks) OnRepositorySelected(context.Context, string, bool)               {}
func (NoopPublishHooks) OnSigningSkipped(context.Context)                                 {}
func (NoopPublishHooks) OnSigned(context.Context, string, int)                            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	publishHooks PublishHooks = NoopPublishHooks{}
	hooksMu      sync.RWMutex
)

// SetPublishHooks registers custom publish hooks.
// This should be called once at application startup. A nil h is ignored.
func SetPublishHooks(h PublishHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		publishHooks = h
	}
}

// Publish returns the registered publish hooks.
func Publish() PublishHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return publishHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	publishHooks = NoopPublishHooks{}
}
