// Package politeness spaces out fetch dispatches. One gate is shared by
// every worker; the crawl targets a single host, so a single global
// interval is the whole policy.
package politeness

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate serializes fetch starts so that no two dispatches begin within
// the configured interval of each other, regardless of which worker
// issues them. A zero or negative interval disables the gate.
type Gate struct {
	lim *rate.Limiter
}

func New(interval time.Duration) *Gate {
	if interval <= 0 {
		return &Gate{}
	}
	// burst 1: each grant reserves the full interval before the next
	return &Gate{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

// Acquire blocks until the caller may dispatch. It returns early with
// the context's error on cancellation; callers must not fetch then.
func (g *Gate) Acquire(ctx context.Context) error {
	if g.lim == nil {
		return ctx.Err()
	}
	return g.lim.Wait(ctx)
}
