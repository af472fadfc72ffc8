package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := LoadMazeChase("")
	if err != nil {
		t.Fatalf("LoadMazeChase failed: %v", err)
	}
	if len(cfg.Maze.Layout) != 0 {
		t.Errorf("expected the classic maze by default, got %d layout rows", len(cfg.Maze.Layout))
	}
	cfg.Maze.Layout = nil
	want := DefaultMazeChaseConfig()

	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded yaml drifted from DefaultMazeChaseConfig:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultMazeChaseConfig().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nscoring:\n  ghost: 400\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMazeChase(path)
	if err != nil {
		t.Fatalf("LoadMazeChase failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("expected 7 lives, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Scoring.Ghost != 400 {
		t.Errorf("expected ghost score 400, got %d", cfg.Scoring.Ghost)
	}
	if cfg.Scoring.Dot != 10 {
		t.Errorf("expected untouched dot score 10, got %d", cfg.Scoring.Dot)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolateHome(t)

	if _, err := LoadMazeChase(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMazeChase(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMazeChase(invalid); err == nil {
		t.Error("expected a validation error")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".mazechase", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "mazechase.yaml"), []byte("gameplay:\n  levels: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMazeChase("")
	if err != nil {
		t.Fatalf("LoadMazeChase failed: %v", err)
	}
	if cfg.Gameplay.Levels != 5 {
		t.Errorf("expected 5 levels from the user config, got %d", cfg.Gameplay.Levels)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeChaseConfig)
	}{
		{"ragged layout", func(c *MazeChaseConfig) { c.Maze.Layout = []string{"###", "##"} }},
		{"tunnel outside", func(c *MazeChaseConfig) { c.Maze.Layout = []string{"###"}; c.Maze.TunnelRow = 4 }},
		{"zero tile", func(c *MazeChaseConfig) { c.Maze.TileSize = 0 }},
		{"too fast", func(c *MazeChaseConfig) { c.Player.Speed = 15 }},
		{"too fast at top difficulty", func(c *MazeChaseConfig) { c.Difficulty.Scaling.SpeedMultiplier = 2.0 }},
		{"no ghosts", func(c *MazeChaseConfig) { c.Ghosts.Spawns = nil }},
		{"unknown ghost", func(c *MazeChaseConfig) { c.Ghosts.Spawns[0].Name = "sue" }},
		{"duplicate ghost", func(c *MazeChaseConfig) { c.Ghosts.Spawns[1].Name = "blinky" }},
		{"bad wave", func(c *MazeChaseConfig) { c.Timings.Waves[0].Mode = "frightened" }},
		{"no waves", func(c *MazeChaseConfig) { c.Timings.Waves = nil }},
		{"inverted delays", func(c *MazeChaseConfig) { c.Pickups.Minor.MaxDelay = 1 }},
		{"warn over despawn", func(c *MazeChaseConfig) { c.Pickups.Major.Warn = 9999 }},
		{"no lives", func(c *MazeChaseConfig) { c.Gameplay.Lives = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMazeChaseConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		enabled    bool
		frightened int
	}{
		{DifficultyEasy, 5, true, 480},
		{DifficultyNormal, 3, true, 360},
		{DifficultyHard, 2, true, 240},
		{DifficultyFixed, 3, false, 360},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMazeChaseConfig()
			ApplyMazeChasePreset(&cfg, tt.preset)

			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("expected %d lives, got %d", tt.lives, cfg.Gameplay.Lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("expected enabled=%v, got %v", tt.enabled, cfg.Difficulty.Enabled)
			}
			if cfg.Timings.FrightenedTicks != tt.frightened {
				t.Errorf("expected %d frightened ticks, got %d", tt.frightened, cfg.Timings.FrightenedTicks)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("expected hard, got %q (%v)", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestDifficultyByLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 4},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.4, FrightenedReduction: 200},
	})

	tests := []struct {
		level      int
		difficulty float64
		speed      float64
		frightened int
	}{
		{1, 0, 1, 360},
		{3, 0.5, 1.2, 260},
		{5, 1, 1.4, 160},
		{9, 1, 1.4, 160},
	}
	for _, tt := range tests {
		p := Progress{Level: tt.level}
		if got := d.Level(p); got != tt.difficulty {
			t.Errorf("level %d: expected difficulty %.2f, got %.2f", tt.level, tt.difficulty, got)
		}
		if got := d.Speed(p); got < tt.speed-1e-9 || got > tt.speed+1e-9 {
			t.Errorf("level %d: expected speed %.2f, got %.4f", tt.level, tt.speed, got)
		}
		if got := d.FrightenedTicks(360, p); got != tt.frightened {
			t.Errorf("level %d: expected %d frightened ticks, got %d", tt.level, tt.frightened, got)
		}
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := d.Level(Progress{Score: 1000}); got != 0.7 {
		t.Errorf("expected 0.7, got %.2f", got)
	}
	if d.IsEnabled() {
		t.Error("expected progression disabled")
	}
	if got := d.FrightenedTicks(90, Progress{}); got != 90 {
		t.Errorf("expected base duration with no reduction, got %d", got)
	}

	d.SetEnabled(true)
	if got := d.Level(Progress{Score: 50}); got < 0.85-1e-9 || got > 0.85+1e-9 {
		t.Errorf("expected 0.85 halfway to max, got %.4f", got)
	}
}

func TestDifficultyMaxSpeed(t *testing.T) {
	tests := []struct {
		multiplier, expected float64
	}{
		{0.3, 1.3},
		{0, 1},
		{-0.5, 1},
	}

	for _, tc := range tests {
		cfg := DefaultMazeChaseConfig().Difficulty
		cfg.Scaling.SpeedMultiplier = tc.multiplier
		d := NewDifficultyManager(cfg)
		if got := d.MaxSpeed(); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("MaxSpeed() with multiplier %.1f = %.2f, expected %.2f", tc.multiplier, got, tc.expected)
		}
		if top := d.Speed(Progress{Level: 100}); top > d.MaxSpeed()+1e-9 {
			t.Errorf("Speed() = %.2f exceeds MaxSpeed() %.2f", top, d.MaxSpeed())
		}
	}
}
