package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DefaultLanguage != "pt-BR" {
		t.Fatalf("expected pt-BR default language, got %s", cfg.DefaultLanguage)
	}
	if cfg.SplashTransition != 1200*time.Millisecond {
		t.Fatalf("expected 1.2s splash transition, got %s", cfg.SplashTransition)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment by default")
	}
}

func TestSplashTransition_FromEnv(t *testing.T) {
	t.Setenv("SPLASH_TRANSITION", "500ms")
	if cfg := New(); cfg.SplashTransition != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", cfg.SplashTransition)
	}

	t.Setenv("SPLASH_TRANSITION", "750")
	if cfg := New(); cfg.SplashTransition != 750*time.Millisecond {
		t.Fatalf("expected bare integer to be millis, got %s", cfg.SplashTransition)
	}

	t.Setenv("SPLASH_TRANSITION", "not-a-duration")
	if cfg := New(); cfg.SplashTransition != 1200*time.Millisecond {
		t.Fatalf("expected fallback default, got %s", cfg.SplashTransition)
	}
}
