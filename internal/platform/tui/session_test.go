package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
)

func sessionUpdate(t *testing.T, s SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := s.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("expected SessionModel, got %T", next)
	}
	return model
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	s := NewSessionModel(nil, cfg, "bob", log.New(io.Discard))

	if s.screen != screenMenu {
		t.Fatalf("expected menu first, got %v", s.screen)
	}

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("expected scoreboard after tab, got %v", s.screen)
	}
	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("expected menu after back, got %v", s.screen)
	}

	// Normal is preselected; one down is hard.
	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("expected game after enter, got %v", s.screen)
	}
	if s.preset != config.DifficultyHard {
		t.Errorf("expected hard, got %q", s.preset)
	}
	if s.quitting {
		t.Error("selecting a game must not end the session")
	}

	s = sessionUpdate(t, s, tea.WindowSizeMsg{Width: 100, Height: 30})
	if s.config.ScreenW != 100 || s.config.ScreenH != 30 {
		t.Errorf("expected 100x30, got %dx%d", s.config.ScreenW, s.config.ScreenH)
	}

	s = sessionUpdate(t, s, runeKey('q'))
	if !s.quitting {
		t.Error("expected q to end the session")
	}
}

func TestMenuCursorStartsOnPreset(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

	m := NewMenuModel(nil, cfg, config.DifficultyFixed)
	if m.items[m.cursor].Preset != config.DifficultyFixed {
		t.Errorf("expected cursor on fixed, got %q", m.items[m.cursor].Preset)
	}

	m = NewMenuModel(nil, cfg, "")
	if m.items[m.cursor].Preset != config.DifficultyNormal {
		t.Errorf("expected cursor on normal, got %q", m.items[m.cursor].Preset)
	}
}
