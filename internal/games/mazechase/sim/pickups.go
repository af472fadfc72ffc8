package sim

import (
	"fmt"
	"math/rand"
)

// PickupKind identifies a transient pickup.
type PickupKind uint8

const (
	PickupMajor PickupKind = iota // power pellet: long frightened period
	PickupMinor                   // speed pellet: short frightened + player boost
)

// String returns the pickup kind name.
func (k PickupKind) String() string {
	switch k {
	case PickupMajor:
		return "major"
	case PickupMinor:
		return "minor"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k PickupKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// PickupRule configures one pickup kind. Durations are in ticks.
type PickupRule struct {
	Kind         PickupKind
	Candidates   []Coord
	Cap          int
	InitialDelay int
	MinDelay     int
	MaxDelay     int
	Despawn      int // age at which an uncollected pickup vanishes
	Warn         int // final ticks of life that carry the flicker hint
}

// Pickup is a live pickup on the board.
type Pickup struct {
	Kind      PickupKind
	Tile      Coord
	Age       int
	Collected bool

	despawn int
	warn    int
}

// Flicker reports whether the pickup is about to expire. Renderers use it
// to blink the sprite.
func (p Pickup) Flicker() bool {
	return p.despawn > 0 && p.Age >= p.despawn-p.warn
}

// Remaining returns the ticks left before despawn.
func (p Pickup) Remaining() int {
	return max(0, p.despawn-p.Age)
}

// PickupScheduler spawns and expires pickups on a fixed set of candidate
// tiles, at most Cap of each kind at a time.
type PickupScheduler struct {
	rules  []PickupRule
	timers []int
	live   []Pickup
	rng    *rand.Rand
}

// NewPickupScheduler validates the rules and arms the initial timers.
func NewPickupScheduler(rules []PickupRule, rng *rand.Rand) (*PickupScheduler, error) {
	for _, r := range rules {
		if r.Cap < 0 || r.MinDelay < 0 || r.MaxDelay < r.MinDelay {
			return nil, fmt.Errorf("sim: invalid %s pickup rule (cap %d, delay %d..%d)", r.Kind, r.Cap, r.MinDelay, r.MaxDelay)
		}
		if r.Cap > 0 && len(r.Candidates) == 0 {
			return nil, fmt.Errorf("sim: %s pickup has no candidate tiles", r.Kind)
		}
	}

	s := &PickupScheduler{
		rules:  append([]PickupRule(nil), rules...),
		timers: make([]int, len(rules)),
		rng:    rng,
	}
	s.Reset()
	return s, nil
}

// Reset clears every pickup and rearms the initial timers.
func (s *PickupScheduler) Reset() {
	s.live = s.live[:0]
	for i, r := range s.rules {
		s.timers[i] = r.InitialDelay
	}
}

// Tick ages live pickups, despawns expired ones and spawns new ones when a
// kind is under its cap and its timer has run out.
func (s *PickupScheduler) Tick() (spawned, expired []Pickup) {
	kept := s.live[:0]
	for _, p := range s.live {
		p.Age++
		if p.despawn > 0 && p.Age >= p.despawn {
			expired = append(expired, p)
			s.rearm(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	s.live = kept

	for i, r := range s.rules {
		if s.Count(r.Kind) >= r.Cap {
			continue
		}
		if s.timers[i] > 0 {
			s.timers[i]--
		}
		if s.timers[i] > 0 {
			continue
		}
		if p, ok := s.TrySpawn(r.Kind); ok {
			spawned = append(spawned, p)
			s.timers[i] = s.delay(r)
		}
	}
	return spawned, expired
}

// TrySpawn places a pickup of the given kind on a free candidate tile.
// It refuses when the kind is at its cap or every candidate is taken.
func (s *PickupScheduler) TrySpawn(kind PickupKind) (Pickup, bool) {
	r, ok := s.rule(kind)
	if !ok || s.Count(kind) >= r.Cap {
		return Pickup{}, false
	}

	free := make([]Coord, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if !s.occupied(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return Pickup{}, false
	}

	p := Pickup{
		Kind:    kind,
		Tile:    free[s.rng.Intn(len(free))],
		despawn: r.Despawn,
		warn:    r.Warn,
	}
	s.live = append(s.live, p)
	return p, true
}

// Collect removes the pickup on tile, if any, and frees its slot.
func (s *PickupScheduler) Collect(tile Coord) (Pickup, bool) {
	for i, p := range s.live {
		if p.Tile != tile {
			continue
		}
		s.live = append(s.live[:i], s.live[i+1:]...)
		s.rearm(p.Kind)
		p.Collected = true
		return p, true
	}
	return Pickup{}, false
}

// Count returns the number of live pickups of a kind.
func (s *PickupScheduler) Count(kind PickupKind) int {
	n := 0
	for _, p := range s.live {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Live returns a copy of the live pickups.
func (s *PickupScheduler) Live() []Pickup {
	return append([]Pickup(nil), s.live...)
}

// Timer returns the ticks left before the next spawn attempt of a kind.
func (s *PickupScheduler) Timer(kind PickupKind) int {
	for i, r := range s.rules {
		if r.Kind == kind {
			return s.timers[i]
		}
	}
	return 0
}

func (s *PickupScheduler) rearm(kind PickupKind) {
	for i, r := range s.rules {
		if r.Kind == kind {
			s.timers[i] = s.delay(r)
		}
	}
}

func (s *PickupScheduler) delay(r PickupRule) int {
	if r.MaxDelay <= r.MinDelay {
		return r.MinDelay
	}
	return r.MinDelay + s.rng.Intn(r.MaxDelay-r.MinDelay+1)
}

func (s *PickupScheduler) rule(kind PickupKind) (PickupRule, bool) {
	for _, r := range s.rules {
		if r.Kind == kind {
			return r, true
		}
	}
	return PickupRule{}, false
}

func (s *PickupScheduler) occupied(c Coord) bool {
	for _, p := range s.live {
		if p.Tile == c {
			return true
		}
	}
	return false
}
