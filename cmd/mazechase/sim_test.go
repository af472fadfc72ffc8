package main

import (
	"testing"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
)

func TestPlayAutopilotRepeatsForSeed(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 11}

	play := func() simResult {
		res, err := playAutopilot(mazechase.NewWithConfig(config.DefaultMazeChaseConfig()), runtime, 3000)
		if err != nil {
			t.Fatalf("playAutopilot failed: %v", err)
		}
		return res
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("expected identical runs for one seed, got %+v and %+v", a, b)
	}
	if a.Seed != 11 {
		t.Errorf("expected seed 11, got %d", a.Seed)
	}
	if a.Stats.Dots == 0 {
		t.Error("expected the autopilot to eat dots")
	}
}

func TestPlayAutopilotTickLimit(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}

	res, err := playAutopilot(mazechase.NewWithConfig(config.DefaultMazeChaseConfig()), runtime, 10)
	if err != nil {
		t.Fatalf("playAutopilot failed: %v", err)
	}
	if res.Finished {
		t.Error("expected an unfinished run after 10 ticks")
	}
	if res.Level != 1 {
		t.Errorf("expected level 1, got %d", res.Level)
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr, expected string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nohost", "nohost"},
	}
	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}
