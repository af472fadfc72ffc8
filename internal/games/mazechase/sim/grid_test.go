package sim_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		tunnel int
		code   string
	}{
		{"no rows", nil, -1, sim.CodeEmptyGrid},
		{"all walls", []string{"###", "###", "###"}, -1, sim.CodeEmptyGrid},
		{"ragged", []string{"###", "#.", "###"}, -1, sim.CodeRaggedRows},
		{"unknown glyph", []string{"###", "#x#", "###"}, -1, sim.CodeBadTile},
		{"open border", []string{"###", "#..", "###"}, -1, sim.CodeBorderOpen},
		{"tunnel into wall", []string{"###", "#.#", "###"}, 1, sim.CodeNoTunnel},
		{"tunnel out of range", []string{"###", "#.#", "###"}, 7, sim.CodeNoTunnel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.ParseGrid(tt.rows, tt.tunnel)
			var ve sim.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, ve.Code)
			}
		})
	}
}

func TestParseGridTunnelEdgesMayBeOpen(t *testing.T) {
	g := mustGrid(t, []string{"###", "...", "###"}, 1)
	if g.IsWall(sim.C(0, 1)) || g.IsWall(sim.C(2, 1)) {
		t.Error("expected tunnel edges to be open")
	}
	if g.TunnelRow() != 1 {
		t.Errorf("expected tunnel row 1, got %d", g.TunnelRow())
	}
}

func TestClassicLayout(t *testing.T) {
	g := mustGrid(t, sim.ClassicLayout(), sim.ClassicTunnelRow)

	if g.W != 28 || g.H != 31 {
		t.Fatalf("expected 28x31, got %dx%d", g.W, g.H)
	}

	door := sim.C(14, 13)
	if !g.IsDoor(door) {
		t.Fatalf("expected door at %v", door)
	}
	if g.Passable(door, false) {
		t.Error("door must block the player")
	}
	if !g.Passable(door, true) {
		t.Error("door must let returning ghosts through")
	}

	if g.HasDot(sim.C(14, 15)) {
		t.Error("house must not hold dots")
	}
	if !g.HasDot(sim.ClassicPlayerStart) {
		t.Error("expected a dot on the player start in the raw layout")
	}

	for _, c := range append(sim.ClassicMajorTiles(), sim.ClassicMinorTiles()...) {
		if !g.Passable(c, false) {
			t.Errorf("pickup tile %v is not walkable", c)
		}
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	g := mustGrid(t, box(5, 5), -1)
	for _, c := range []sim.Coord{sim.C(-1, 2), sim.C(5, 2), sim.C(2, -1), sim.C(2, 5)} {
		if !g.IsWall(c) {
			t.Errorf("expected %v to read as wall", c)
		}
	}
}
