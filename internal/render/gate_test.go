package render

import (
	"testing"
	"time"
)

func TestSplashGate_OpensAfterTransition(t *testing.T) {
	opened := make(chan struct{})
	gate := NewSplashGate(10*time.Millisecond, func() { close(opened) })

	if gate.State() != GateClosed {
		t.Fatalf("expected closed gate, got %s", gate.State())
	}

	gate.Open()
	if gate.State() != GateTransitioning {
		t.Fatalf("expected transitioning gate, got %s", gate.State())
	}

	select {
	case <-opened:
	case <-time.After(time.Second):
		t.Fatalf("gate never opened")
	}
	if gate.State() != GateOpened {
		t.Fatalf("expected opened gate, got %s", gate.State())
	}
}

func TestSplashGate_ZeroDurationOpensImmediately(t *testing.T) {
	fired := false
	gate := NewSplashGate(0, func() { fired = true })

	gate.Open()
	if !gate.Opened() {
		t.Fatalf("expected immediate open with zero duration")
	}
	if !fired {
		t.Fatalf("expected opened callback to fire")
	}
}

func TestSplashGate_DuplicateOpenIsHarmless(t *testing.T) {
	count := 0
	gate := NewSplashGate(0, func() { count++ })

	gate.Open()
	gate.Open()
	gate.Open()

	if count != 1 {
		t.Fatalf("expected one opened event, got %d", count)
	}
	if !gate.Opened() {
		t.Fatalf("expected gate to stay opened")
	}
}

func TestSplashGate_CloseCancelsPendingTransition(t *testing.T) {
	fired := make(chan struct{}, 1)
	gate := NewSplashGate(20*time.Millisecond, func() { fired <- struct{}{} })

	gate.Open()
	gate.Close()

	select {
	case <-fired:
		t.Fatalf("opened callback fired after the session closed")
	case <-time.After(60 * time.Millisecond):
	}
}
