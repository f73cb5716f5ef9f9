// Package recog defines the recognition engine port and its HTTP client.
// The engine itself (model, training, taxonomy) is an external collaborator;
// this package only speaks its wire contract
package recog

import (
	"context"
	"time"

	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
)

// Engine analyzes a piece of text and returns candidate entity spans.
// Implementations must be safe for concurrent use, must not retain or mutate
// the input text, and must return identical spans for identical input within
// a process lifetime. Span ordering is not part of the contract; callers
// merge before use
type Engine interface {
	Analyze(ctx context.Context, text, language string, allowed []entity.Type, minScore float64) ([]span.Span, error)
}

// Prober is satisfied by engines that can report readiness
type Prober interface {
	Ready(ctx context.Context) error
}

// WaitReady polls p until it reports ready or ctx expires. Poll failures are
// swallowed until the deadline; the last probe error is what comes back
func WaitReady(ctx context.Context, p Prober) error {
	const interval = 2 * time.Second

	var last error
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if last = p.Ready(ctx); last == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return last
		case <-t.C:
		}
	}
}
