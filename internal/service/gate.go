package service

import (
	"context"
	"sync"
)

// Gate is the cooperative pause point for the batch loop. The orchestrator
// waits on it only at its two checkpoints — before each product and during
// the inter-product wait — so an in-flight resolution or upload always runs
// to completion before a pause takes effect.
type Gate struct {
	mu     sync.Mutex
	resume chan struct{} // closed while running
}

func NewGate() *Gate {
	g := &Gate{resume: make(chan struct{})}
	close(g.resume)
	return g
}

func (g *Gate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.resume:
		g.resume = make(chan struct{})
	default:
	}
}

func (g *Gate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.resume:
	default:
		close(g.resume)
	}
}

func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.resume:
		return false
	default:
		return true
	}
}

// Wait blocks while paused. Cancellation wins over a pause.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.resume
	g.mu.Unlock()
	select {
	case <-ch:
		return ctx.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
