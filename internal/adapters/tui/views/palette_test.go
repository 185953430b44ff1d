package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"roamstats/internal/ports"
)

func TestPalette_AddRemove(t *testing.T) {
	p := NewPaletteModel()

	if err := p.AddCommand(ports.Command{Label: "Stats: Toggle Stats Drawer"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := p.AddCommand(ports.Command{Label: "Stats: Toggle Stats Drawer"}); !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("expected ErrDuplicateCommand, got %v", err)
	}
	if err := p.AddCommand(ports.Command{Label: "  "}); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}

	if err := p.RemoveCommand("Stats: Toggle Stats Drawer"); err != nil {
		t.Fatalf("RemoveCommand: %v", err)
	}
	if err := p.RemoveCommand("Stats: Toggle Stats Drawer"); !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("expected ErrCommandNotFound, got %v", err)
	}
	if len(p.Labels()) != 0 {
		t.Errorf("labels = %v, want none", p.Labels())
	}
}

func TestPalette_FilterAndRun(t *testing.T) {
	p := NewPaletteModel()
	var ran []string
	for _, label := range []string{"Stats: Toggle Stats Drawer", "Stats: Load All", "Stats: Copy to Clipboard"} {
		label := label
		if err := p.AddCommand(ports.Command{Label: label, Callback: func() { ran = append(ran, label) }}); err != nil {
			t.Fatal(err)
		}
	}
	p.Open()

	for _, r := range "load" {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if len(p.matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(p.matches))
	}

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(ran) != 1 || ran[0] != "Stats: Load All" {
		t.Errorf("ran %v, want [Stats: Load All]", ran)
	}
	if _, ok := cmd().(SwitchToMainMsg); !ok {
		t.Error("running a command should close the palette")
	}
}

func TestPalette_OpenClearsFilter(t *testing.T) {
	p := NewPaletteModel()
	_ = p.AddCommand(ports.Command{Label: "Stats: Load All"})
	_ = p.AddCommand(ports.Command{Label: "Stats: Toggle Auto-load"})
	p.Open()
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
	if len(p.matches) != 0 {
		t.Fatalf("matches = %d, want 0", len(p.matches))
	}

	// enter with no match does nothing
	if _, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter without a match should be a no-op")
	}

	p.Open()
	if len(p.matches) != 2 {
		t.Errorf("matches = %d, want 2", len(p.matches))
	}
}

func TestPalette_Cancel(t *testing.T) {
	p := NewPaletteModel()
	p.Open()
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SwitchToMainMsg); !ok {
		t.Error("esc should close the palette")
	}
}

func TestPalette_Run(t *testing.T) {
	p := NewPaletteModel()
	called := false
	_ = p.AddCommand(ports.Command{Label: "x", Callback: func() { called = true }})
	if err := p.Run("x"); err != nil || !called {
		t.Errorf("Run: err=%v called=%v", err, called)
	}
	if err := p.Run("y"); !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("expected ErrCommandNotFound, got %v", err)
	}
}

func TestPalette_IsTeaModel(t *testing.T) {
	var model tea.Model = NewPaletteModel()

	if cmd := model.Init(); cmd != nil {
		t.Error("Init should return nil")
	}
	next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if _, ok := next.(*PaletteModel); !ok {
		t.Fatalf("Update returned %T, want *PaletteModel", next)
	}
}
