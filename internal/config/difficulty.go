package config

import "math"

// Progress is the run position the difficulty is computed from.
type Progress struct {
	Level int // 1-based maze number
	Score int
	Ticks int
}

// DifficultyManager calculates dynamic game parameters based on run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(p.Level-1) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the ghost speed multiplier, from 1 up to 1+speed_multiplier.
func (d *DifficultyManager) Speed(p Progress) float64 {
	return 1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
}

// MaxSpeed returns the largest multiplier Speed can reach under any preset.
func (d *DifficultyManager) MaxSpeed() float64 {
	return 1.0 + math.Max(0, d.cfg.Scaling.SpeedMultiplier)
}

// FrightenedTicks returns the shortened frightened duration.
func (d *DifficultyManager) FrightenedTicks(base int, p Progress) int {
	reduction := int(d.Level(p) * float64(d.cfg.Scaling.FrightenedReduction))
	result := base - reduction
	if result < 60 { // Minimum of one second
		result = 60
	}
	if result > base {
		result = base
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
