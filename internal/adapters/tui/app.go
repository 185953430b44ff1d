package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roamstats/internal/adapters/tui/styles"
	"roamstats/internal/adapters/tui/views"
	"roamstats/internal/application/commands"
	"roamstats/internal/application/stats"
	"roamstats/internal/log"
	"roamstats/internal/ports"
)

// Palette command labels
const (
	CommandToggleDrawer   = "Stats: Toggle Stats Drawer"
	CommandToggleAutoLoad = "Stats: Toggle Auto-load"
	CommandLoadAll        = "Stats: Load All"
	CommandCopy           = "Stats: Copy to Clipboard"
)

// Screen represents the current view
type Screen int

const (
	ScreenMain Screen = iota
	ScreenPalette
	ScreenHelp
)

// AppKeyMap defines the global key bindings
type AppKeyMap struct {
	Palette key.Binding
	Drawer  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var AppKeys = AppKeyMap{
	Palette: key.NewBinding(
		key.WithKeys(":", "ctrl+p"),
		key.WithHelp(":", "commands"),
	),
	Drawer: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Deps are the collaborators of the App. Navigator and Clipboard may be nil.
type Deps struct {
	Loader    *stats.Loader
	Settings  ports.SettingsStore
	Navigator ports.PageNavigator
	Clipboard ports.Clipboard
	Graph     string
	Dev       bool
}

type openDrawerMsg struct {
	autoLoad bool
	err      error
}

type autoLoadToggledMsg struct {
	enabled bool
	err     error
}

// App is the main TUI application model
type App struct {
	views.ViewState

	deps  Deps
	state Screen

	drawer  *views.DrawerModel
	palette *views.PaletteModel
	help    *views.HelpModel

	// pending collects commands queued by palette callbacks during Update
	pending []tea.Cmd
}

// NewApp creates a new TUI application
func NewApp(deps Deps) *App {
	palette := views.NewPaletteModel()
	return &App{
		deps:    deps,
		state:   ScreenMain,
		drawer:  views.NewDrawerModel(deps.Loader, deps.Navigator, deps.Clipboard, deps.Graph),
		palette: palette,
		help:    views.NewHelpModel(palette.Labels),
	}
}

// Palette exposes the command registry
func (a *App) Palette() ports.CommandPalette {
	return a.palette
}

// Register adds the stats commands to the palette
func (a *App) Register() error {
	entries := []ports.Command{
		{Label: CommandToggleDrawer, Callback: func() { a.queue(a.toggleDrawer()) }},
		{Label: CommandToggleAutoLoad, Callback: func() { a.queue(a.toggleAutoLoad()) }},
		{Label: CommandLoadAll, Callback: func() { a.queue(a.loadAll()) }},
		{Label: CommandCopy, Callback: func() { a.queue(a.drawer.Copy()) }},
	}
	for _, c := range entries {
		if err := a.palette.AddCommand(c); err != nil {
			return fmt.Errorf("register %q: %w", c.Label, err)
		}
	}
	return nil
}

// Unregister removes the stats commands from the palette
func (a *App) Unregister() error {
	var errs []error
	for _, label := range []string{CommandToggleDrawer, CommandToggleAutoLoad, CommandLoadAll, CommandCopy} {
		if err := a.palette.RemoveCommand(label); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.drawer.WaitForUpdate()}
	if a.deps.Dev {
		cmds = append(cmds, views.Toast("Stats extension loaded", false))
	}
	return tea.Batch(cmds...)
}

func (a *App) queue(cmd tea.Cmd) {
	if cmd != nil {
		a.pending = append(a.pending, cmd)
	}
}

func (a *App) flush(cmd tea.Cmd) tea.Cmd {
	if len(a.pending) == 0 {
		return cmd
	}
	cmds := append(a.pending, cmd)
	a.pending = nil
	return tea.Batch(cmds...)
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.ExpireMessage(msg) {
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.drawer.SetSize(styles.DrawerWidth, msg.Height)
		a.palette.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.ToastMsg:
		if msg.IsErr {
			log.Warn(map[string]any{"message": msg.Text}, "tui error")
		}
		return a, a.SetMessage(msg.Text, msg.IsErr)

	case openDrawerMsg:
		var cmds []tea.Cmd
		if msg.err != nil {
			log.Warn(map[string]any{"error": msg.err.Error()}, "read auto-load preference")
			cmds = append(cmds, a.SetMessage("Could not read auto-load preference", true))
		}
		cmds = append(cmds, a.drawer.Open(msg.autoLoad))
		return a, tea.Batch(cmds...)

	case autoLoadToggledMsg:
		if msg.err != nil {
			return a, a.SetMessage(fmt.Sprintf("Toggle auto-load: %v", msg.err), true)
		}
		state := "disabled"
		if msg.enabled {
			state = "enabled"
		}
		return a, a.SetMessage("Auto-load "+state, false)

	case views.StatUpdatedMsg, spinner.TickMsg:
		// the drawer owns the update stream and spinner in every screen
		_, cmd := a.drawer.Update(msg)
		return a, cmd

	case views.CloseDrawerMsg:
		a.drawer.Close()
		return a, nil

	case views.SwitchToPaletteMsg:
		a.state = ScreenPalette
		return a, a.palette.Open()

	case views.SwitchToHelpMsg:
		a.state = ScreenHelp
		return a, nil

	case views.SwitchToMainMsg:
		a.state = ScreenMain
		return a, nil

	case tea.KeyMsg:
		if a.state == ScreenMain {
			if cmd, handled := a.handleGlobalKey(msg); handled {
				return a, cmd
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case ScreenPalette:
		_, cmd = a.palette.Update(msg)
	case ScreenHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.drawer.Update(msg)
	}

	return a, a.flush(cmd)
}

func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, AppKeys.Quit):
		return tea.Quit, true
	case key.Matches(msg, AppKeys.Palette):
		return func() tea.Msg { return views.SwitchToPaletteMsg{} }, true
	case key.Matches(msg, AppKeys.Help):
		return func() tea.Msg { return views.SwitchToHelpMsg{} }, true
	case key.Matches(msg, AppKeys.Drawer) && !a.drawer.IsOpen():
		return a.toggleDrawer(), true
	}
	return nil, false
}

// toggleDrawer closes an open drawer, or reads the auto-load preference
// and opens it
func (a *App) toggleDrawer() tea.Cmd {
	if a.drawer.IsOpen() {
		a.drawer.Close()
		return nil
	}
	store := a.deps.Settings
	return func() tea.Msg {
		enabled, err := commands.NewGetAutoLoadCommand(store).Execute(context.Background())
		return openDrawerMsg{autoLoad: enabled, err: err}
	}
}

func (a *App) toggleAutoLoad() tea.Cmd {
	store := a.deps.Settings
	return func() tea.Msg {
		ctx := context.Background()
		current, err := commands.NewGetAutoLoadCommand(store).Execute(ctx)
		if err != nil {
			return autoLoadToggledMsg{err: err}
		}
		next := !current
		if err := commands.NewSetAutoLoadCommand(store, next).Execute(ctx); err != nil {
			return autoLoadToggledMsg{err: err}
		}
		return autoLoadToggledMsg{enabled: next}
	}
}

func (a *App) loadAll() tea.Cmd {
	if a.drawer.IsOpen() {
		a.drawer.LoadAll()
		return nil
	}
	return func() tea.Msg { return openDrawerMsg{autoLoad: true} }
}

// State returns the current view
func (a *App) State() Screen {
	return a.state
}

// Drawer returns the stats drawer
func (a *App) Drawer() *views.DrawerModel {
	return a.drawer
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ScreenPalette:
		return a.palette.View()
	case ScreenHelp:
		return a.help.View()
	}

	main := a.mainView()
	if !a.drawer.IsOpen() {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, a.drawer.View())
}

func (a *App) mainView() string {
	vb := views.NewViewBuilder()
	vb.Title("roamstats")
	if a.deps.Graph != "" {
		vb.Subtitle("graph: " + a.deps.Graph)
	} else {
		vb.BlankLine()
	}
	vb.Message(a.Message, a.MessageErr)
	vb.Help(AppKeys.Palette, AppKeys.Drawer, AppKeys.Help, AppKeys.Quit)

	style := styles.App
	if w := a.Width - styles.DrawerWidth; a.drawer.IsOpen() && w > 0 {
		style = style.Width(w)
	}
	return style.Render(vb.StringUnwrapped())
}
