package barchart

import (
	"context"
)

// Loop serialises resize handling: events are queued by Notify from any
// callback and handled one at a time by Run, which owns the State.
// Events that arrive while one is pending are merged into it.
type Loop struct {
	r      *Renderer
	events chan struct{}
}

func NewLoop(r *Renderer) *Loop {
	return &Loop{r: r, events: make(chan struct{}, 1)}
}

// Notify queues a resize. It never blocks.
func (l *Loop) Notify() {
	select {
	case l.events <- struct{}{}:
	default:
	}
}

// Run draws the first chart, then handles resizes until ctx is done.
// It returns the last state.
func (l *Loop) Run(ctx context.Context) State {
	st := l.r.Start()
	for {
		select {
		case <-ctx.Done():
			return st
		case <-l.events:
			st = l.r.OnResize(st)
		}
	}
}
