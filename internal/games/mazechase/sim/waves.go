package sim

// Mode is a ghost's top-level behavioral state.
type Mode uint8

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Wave is one entry of the scatter/chase schedule. Ticks <= 0 lasts forever.
type Wave struct {
	Mode  Mode
	Ticks int
}

// ClassicWaves is the arcade schedule at 60 Hz: 7s/20s/7s/20s/5s/20s/5s then
// chase forever.
func ClassicWaves() []Wave {
	return []Wave{
		{ModeScatter, 420},
		{ModeChase, 1200},
		{ModeScatter, 420},
		{ModeChase, 1200},
		{ModeScatter, 300},
		{ModeChase, 1200},
		{ModeScatter, 300},
		{ModeChase, -1},
	}
}

// WaveScheduler owns the scatter/chase schedule for all ghosts. The world is
// its only writer so every ghost switches on the same tick.
type WaveScheduler struct {
	waves   []Wave
	index   int
	elapsed int
}

// NewWaveScheduler creates a scheduler over the given waves.
func NewWaveScheduler(waves []Wave) *WaveScheduler {
	w := make([]Wave, len(waves))
	copy(w, waves)
	return &WaveScheduler{waves: w}
}

// Current returns the scheduled mode. Once the list is exhausted the mode is
// pinned to chase.
func (s *WaveScheduler) Current() Mode {
	if s.index >= len(s.waves) {
		return ModeChase
	}
	return s.waves[s.index].Mode
}

// Index returns the position in the schedule.
func (s *WaveScheduler) Index() int {
	return s.index
}

// Elapsed returns ticks spent in the current wave.
func (s *WaveScheduler) Elapsed() int {
	return s.elapsed
}

// Tick advances the schedule unless paused. changed is true when the
// scheduled mode switched on this tick.
func (s *WaveScheduler) Tick(paused bool) (mode Mode, changed bool) {
	if paused || s.index >= len(s.waves) {
		return s.Current(), false
	}

	wave := s.waves[s.index]
	if wave.Ticks <= 0 {
		return wave.Mode, false
	}

	s.elapsed++
	if s.elapsed < wave.Ticks {
		return wave.Mode, false
	}

	s.index++
	s.elapsed = 0
	next := s.Current()
	return next, next != wave.Mode
}

// Reset rewinds to the first wave.
func (s *WaveScheduler) Reset() {
	s.index = 0
	s.elapsed = 0
}
