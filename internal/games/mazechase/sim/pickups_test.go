package sim_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

func quietRules() []sim.PickupRule {
	return []sim.PickupRule{
		{Kind: sim.PickupMajor, Candidates: sim.ClassicMajorTiles(), Cap: 2, InitialDelay: 1000, MinDelay: 1000, MaxDelay: 1000, Despawn: 10, Warn: 3},
		{Kind: sim.PickupMinor, Candidates: sim.ClassicMinorTiles(), Cap: 1, InitialDelay: 1000, MinDelay: 1000, MaxDelay: 1000, Despawn: 10, Warn: 3},
	}
}

func TestPickupCaps(t *testing.T) {
	s, err := sim.NewPickupScheduler(quietRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPickupScheduler failed: %v", err)
	}

	first, ok := s.TrySpawn(sim.PickupMajor)
	if !ok {
		t.Fatal("expected first major spawn")
	}
	second, ok := s.TrySpawn(sim.PickupMajor)
	if !ok {
		t.Fatal("expected second major spawn")
	}
	if first.Tile == second.Tile {
		t.Errorf("expected distinct tiles, both at %v", first.Tile)
	}
	if _, ok := s.TrySpawn(sim.PickupMajor); ok {
		t.Fatal("expected third major spawn to be refused")
	}

	if _, ok := s.TrySpawn(sim.PickupMinor); !ok {
		t.Fatal("expected minor spawn")
	}
	if _, ok := s.TrySpawn(sim.PickupMinor); ok {
		t.Fatal("expected second minor spawn to be refused")
	}

	p, ok := s.Collect(first.Tile)
	if !ok || p.Kind != sim.PickupMajor || !p.Collected {
		t.Fatalf("expected to collect the major pickup at %v", first.Tile)
	}
	if _, ok := s.TrySpawn(sim.PickupMajor); !ok {
		t.Error("expected a major spawn after a slot was freed")
	}
}

func TestPickupDespawnAndFlicker(t *testing.T) {
	s, err := sim.NewPickupScheduler(quietRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPickupScheduler failed: %v", err)
	}
	if _, ok := s.TrySpawn(sim.PickupMinor); !ok {
		t.Fatal("expected minor spawn")
	}

	for range 6 {
		s.Tick()
	}
	if s.Live()[0].Flicker() {
		t.Error("expected no flicker before the warning window")
	}

	s.Tick()
	if !s.Live()[0].Flicker() {
		t.Error("expected flicker in the warning window")
	}

	var expired []sim.Pickup
	for range 3 {
		_, e := s.Tick()
		expired = append(expired, e...)
	}
	if len(expired) != 1 || expired[0].Kind != sim.PickupMinor {
		t.Fatalf("expected one expired minor pickup, got %v", expired)
	}
	if s.Count(sim.PickupMinor) != 0 {
		t.Error("expected the slot to be free after despawn")
	}
	if _, ok := s.TrySpawn(sim.PickupMinor); !ok {
		t.Error("expected a minor spawn after despawn")
	}
}

func TestPickupTimedSpawn(t *testing.T) {
	rules := []sim.PickupRule{
		{Kind: sim.PickupMajor, Candidates: []sim.Coord{sim.C(1, 1), sim.C(2, 2)}, Cap: 2, InitialDelay: 5, MinDelay: 5, MaxDelay: 5},
	}
	s, err := sim.NewPickupScheduler(rules, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPickupScheduler failed: %v", err)
	}

	for range 4 {
		if spawned, _ := s.Tick(); len(spawned) != 0 {
			t.Fatal("expected no spawn before the delay")
		}
	}
	if spawned, _ := s.Tick(); len(spawned) != 1 {
		t.Fatal("expected a spawn once the delay elapsed")
	}

	for range 5 {
		s.Tick()
	}
	if s.Count(sim.PickupMajor) != 2 {
		t.Fatalf("expected both slots filled, got %d", s.Count(sim.PickupMajor))
	}

	for range 50 {
		if spawned, _ := s.Tick(); len(spawned) != 0 {
			t.Fatal("expected no spawn at the cap")
		}
	}
}

func TestPickupRuleValidation(t *testing.T) {
	bad := []sim.PickupRule{{Kind: sim.PickupMajor, Cap: 1, MinDelay: 10, MaxDelay: 5, Candidates: []sim.Coord{sim.C(1, 1)}}}
	if _, err := sim.NewPickupScheduler(bad, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error for an inverted delay range")
	}

	empty := []sim.PickupRule{{Kind: sim.PickupMinor, Cap: 1}}
	if _, err := sim.NewPickupScheduler(empty, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error for a rule without candidates")
	}
}
