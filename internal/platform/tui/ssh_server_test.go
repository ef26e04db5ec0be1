package tui

import (
	"testing"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

func TestSSHRuntimeConfigCarriesSeed(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.TickRate = 30
	cfg.Seed = 42
	srv := &SSHServer{config: cfg}

	rt := srv.runtimeConfig(100, 40)
	if rt.ScreenW != 100 || rt.ScreenH != 40 || rt.TickRate != 30 {
		t.Errorf("runtime = %+v", rt)
	}
	if rt.Seed != 42 {
		t.Fatalf("Seed = %d, expected 42", rt.Seed)
	}

	// Two connections with the same fixed seed start with the same ball.
	a := NewModel(config.DefaultBlockBreakerConfig(), srv.runtimeConfig(80, 24))
	b := NewModel(config.DefaultBlockBreakerConfig(), srv.runtimeConfig(120, 40))
	if a.Session().Game().Ball() != b.Session().Game().Ball() {
		t.Error("sessions with the same seed placed the ball differently")
	}
}

func TestSSHRuntimeConfigDefaultSeedIsClock(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig()}
	if rt := srv.runtimeConfig(80, 24); rt.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 for clock seeding", rt.Seed)
	}
}
