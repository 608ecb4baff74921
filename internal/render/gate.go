package render

import (
	"sync"
	"time"
)

// GateState is one phase of the public splash gate.
type GateState string

const (
	GateClosed        GateState = "closed"
	GateTransitioning GateState = "transitioning"
	GateOpened        GateState = "opened"
)

// SplashGate controls the public-mode reveal: only the splash section is
// visible until the guest opens the invitation. Transitions are one-way; an
// opened gate never resets within the session, only a fresh gate does.
type SplashGate struct {
	mu       sync.Mutex
	state    GateState
	duration time.Duration
	timer    *time.Timer
	onOpened func()
}

// NewSplashGate creates a closed gate. duration is how long the visual
// transition lasts before the gate reports opened; onOpened fires once, when
// the transition completes, and may be nil.
func NewSplashGate(duration time.Duration, onOpened func()) *SplashGate {
	return &SplashGate{
		state:    GateClosed,
		duration: duration,
		onOpened: onOpened,
	}
}

// State returns the current gate phase.
func (g *SplashGate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Open starts the transition. Calls after the first are no-ops, so a
// duplicate open command is harmless.
func (g *SplashGate) Open() {
	g.mu.Lock()
	if g.state != GateClosed {
		g.mu.Unlock()
		return
	}

	if g.duration <= 0 {
		g.state = GateOpened
		callback := g.onOpened
		g.mu.Unlock()
		if callback != nil {
			callback()
		}
		return
	}

	g.state = GateTransitioning
	g.timer = time.AfterFunc(g.duration, g.finish)
	g.mu.Unlock()
}

func (g *SplashGate) finish() {
	g.mu.Lock()
	if g.state != GateTransitioning {
		g.mu.Unlock()
		return
	}
	g.state = GateOpened
	callback := g.onOpened
	g.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// Close cancels a pending transition timer. Called when the viewing session
// ends before the transition fires; an already opened gate stays opened.
func (g *SplashGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

// Opened reports whether the gate has fully opened.
func (g *SplashGate) Opened() bool {
	return g.State() == GateOpened
}
