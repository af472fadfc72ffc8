package sim

// SpeedConfig holds the ghost speed parameters. Durations are in ticks.
type SpeedConfig struct {
	Base               float64 // pixels per tick
	ProgressiveStep    float64 // added every ProgressiveTicks
	ProgressiveTicks   int
	ProgressiveMax     float64
	DebuffMultiplier   float64
	DebuffTicks        int
	BuffMultiplier     float64
	BuffTicks          int
	FrightenedFactor   float64
	EatenFactor        float64
	DisableProgressive bool
}

// DefaultSpeedConfig mirrors the arcade tuning at 60 Hz with 20 px tiles.
func DefaultSpeedConfig() SpeedConfig {
	return SpeedConfig{
		Base:             1.3 * 1.25,
		ProgressiveStep:  0.05,
		ProgressiveTicks: 480,
		ProgressiveMax:   1.5,
		DebuffMultiplier: 0.75,
		DebuffTicks:      300,
		BuffMultiplier:   1.5,
		BuffTicks:        180,
		FrightenedFactor: 0.5,
		EatenFactor:      2.0,
	}
}

// SpeedModel computes a ghost's effective speed:
//
//	base × progressive × mode × buff × startDebuff × scale
//
// The product is cached and only recomputed after a factor changes.
type SpeedModel struct {
	cfg SpeedConfig

	steps        int // progressive increments applied so far
	progressTick int
	debuffLeft   int
	buffLeft     int
	mode         Mode
	scale        float64

	cached float64
	dirty  bool
}

// NewSpeedModel returns a model in its full-reset state.
func NewSpeedModel(cfg SpeedConfig) SpeedModel {
	s := SpeedModel{cfg: cfg}
	s.ResetAll()
	return s
}

// Speed returns the effective speed in pixels per tick.
func (s *SpeedModel) Speed() float64 {
	if s.dirty {
		s.cached = s.cfg.Base * s.Progressive() * s.modeFactor() * s.buffFactor() * s.debuffFactor() * s.scale
		s.dirty = false
	}
	return s.cached
}

// Progressive returns the progressive multiplier.
func (s *SpeedModel) Progressive() float64 {
	m := 1 + float64(s.steps)*s.cfg.ProgressiveStep
	if m > s.cfg.ProgressiveMax {
		return s.cfg.ProgressiveMax
	}
	return m
}

// Debuffed reports whether the start debuff is still active.
func (s *SpeedModel) Debuffed() bool {
	return s.debuffLeft > 0
}

// Buffed reports whether the post-frightened buff is active.
func (s *SpeedModel) Buffed() bool {
	return s.buffLeft > 0
}

// SetMode updates the mode factor.
func (s *SpeedModel) SetMode(m Mode) {
	if s.mode != m {
		s.mode = m
		s.dirty = true
	}
}

// SetScale applies an external difficulty multiplier.
func (s *SpeedModel) SetScale(f float64) {
	if f <= 0 {
		f = 1
	}
	if s.scale != f {
		s.scale = f
		s.dirty = true
	}
}

// StartBuff starts the temporary speed buff window.
func (s *SpeedModel) StartBuff() {
	s.buffLeft = s.cfg.BuffTicks
	s.dirty = true
}

// Tick advances the debuff, progressive and buff timers by one tick.
func (s *SpeedModel) Tick(inHouse bool) {
	if s.debuffLeft > 0 {
		s.debuffLeft--
		if s.debuffLeft == 0 {
			s.dirty = true
		}
	}

	if !inHouse && s.debuffLeft == 0 && !s.cfg.DisableProgressive && s.cfg.ProgressiveTicks > 0 {
		s.progressTick++
		if s.progressTick >= s.cfg.ProgressiveTicks {
			s.progressTick = 0
			if s.Progressive() < s.cfg.ProgressiveMax {
				s.steps++
				s.dirty = true
			}
		}
	}

	if s.buffLeft > 0 {
		s.buffLeft--
		if s.buffLeft == 0 {
			s.dirty = true
		}
	}
}

// ResetTransient clears the buff and mode factor. Progressive speed and the
// start debuff survive: difficulty persists across deaths.
func (s *SpeedModel) ResetTransient() {
	s.buffLeft = 0
	s.mode = ModeScatter
	s.dirty = true
}

// ResetAll restores the state of a fresh game.
func (s *SpeedModel) ResetAll() {
	s.steps = 0
	s.progressTick = 0
	s.debuffLeft = s.cfg.DebuffTicks
	s.buffLeft = 0
	s.mode = ModeScatter
	if s.scale == 0 {
		s.scale = 1
	}
	s.dirty = true
}

func (s *SpeedModel) modeFactor() float64 {
	switch s.mode {
	case ModeFrightened:
		return s.cfg.FrightenedFactor
	case ModeEaten:
		return s.cfg.EatenFactor
	default:
		return 1
	}
}

func (s *SpeedModel) buffFactor() float64 {
	if s.buffLeft > 0 {
		return s.cfg.BuffMultiplier
	}
	return 1
}

func (s *SpeedModel) debuffFactor() float64 {
	if s.debuffLeft > 0 {
		return s.cfg.DebuffMultiplier
	}
	return 1
}
