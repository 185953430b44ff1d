package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"roamstats/internal/adapters/tui/views"
	"roamstats/internal/application/commands"
	"roamstats/internal/application/stats"
)

type memSettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (s *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memSettings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

type oneEngine struct{}

func (oneEngine) Query(context.Context, string, ...any) (any, error) {
	return 1.0, nil
}

func newTestApp(t *testing.T, settings *memSettings) *App {
	t.Helper()
	loader := stats.NewLoader(oneEngine{}, stats.WithScheduler(stats.ImmediateScheduler{}))
	app := NewApp(Deps{Loader: loader, Settings: settings, Graph: "demo"})
	if err := app.Register(); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and every command batched inside it
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestApp_RegisterCommands(t *testing.T) {
	app := newTestApp(t, newMemSettings())

	want := []string{CommandToggleDrawer, CommandToggleAutoLoad, CommandLoadAll, CommandCopy}
	if diff := cmp.Diff(want, app.palette.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	if err := app.Register(); err == nil {
		t.Error("registering twice should fail")
	}
	if err := app.Unregister(); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if len(app.palette.Labels()) != 0 {
		t.Error("Unregister should remove every command")
	}
}

func TestApp_ToggleDrawerReadsPreference(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		autoLoad bool
	}{
		{name: "unset defaults on", stored: "", autoLoad: true},
		{name: "enabled", stored: "true", autoLoad: true},
		{name: "disabled", stored: "false", autoLoad: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := newMemSettings()
			if tt.stored != "" {
				settings.values[commands.AutoLoadSetting] = tt.stored
			}
			app := newTestApp(t, settings)

			_, cmd := app.Update(runes("s"))
			for _, msg := range drain(cmd) {
				app.Update(msg)
			}

			if !app.Drawer().IsOpen() {
				t.Fatal("drawer should be open")
			}
			if app.Drawer().AutoLoad() != tt.autoLoad {
				t.Errorf("auto-load = %v, want %v", app.Drawer().AutoLoad(), tt.autoLoad)
			}
			if got := app.deps.Loader.Snapshot().Complete(); got != tt.autoLoad {
				t.Errorf("loaded everything = %v, want %v", got, tt.autoLoad)
			}
		})
	}
}

func TestApp_PaletteTogglesAutoLoad(t *testing.T) {
	settings := newMemSettings()
	app := newTestApp(t, settings)

	_, cmd := app.Update(runes(":"))
	for _, msg := range drain(cmd) {
		app.Update(msg)
	}
	if app.State() != ScreenPalette {
		t.Fatalf("state = %v, want palette", app.State())
	}

	app.Update(runes("auto-load"))
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	var toggled bool
	for _, msg := range drain(cmd) {
		if _, ok := msg.(autoLoadToggledMsg); ok {
			toggled = true
		}
		app.Update(msg)
	}
	if !toggled {
		t.Fatal("expected the toggle command to run")
	}
	if got := settings.values[commands.AutoLoadSetting]; got != "false" {
		t.Errorf("stored preference = %q, want false", got)
	}
	if app.State() != ScreenMain {
		t.Errorf("state = %v, want main", app.State())
	}
	if app.Message != "Auto-load disabled" {
		t.Errorf("message = %q", app.Message)
	}
}

func TestApp_DrawerCloseKeepsUpdatesFlowing(t *testing.T) {
	app := newTestApp(t, newMemSettings())
	app.Update(openDrawerMsg{autoLoad: false})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	for _, msg := range drain(cmd) {
		app.Update(msg)
	}
	if app.Drawer().IsOpen() {
		t.Error("esc should close the drawer")
	}

	app.Update(views.SwitchToHelpMsg{})
	_, cmd = app.Update(views.StatUpdatedMsg{})
	if cmd == nil {
		t.Error("stat updates should re-arm the wait outside the main screen")
	}
}

func TestApp_InitToastInDev(t *testing.T) {
	loader := stats.NewLoader(oneEngine{}, stats.WithScheduler(stats.ImmediateScheduler{}))
	app := NewApp(Deps{Loader: loader, Settings: newMemSettings(), Dev: true})
	if app.Init() == nil {
		t.Fatal("Init should return commands")
	}
}
