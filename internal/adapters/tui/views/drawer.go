package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"roamstats/internal/adapters/tui/styles"
	"roamstats/internal/application"
	"roamstats/internal/application/commands"
	"roamstats/internal/application/stats"
	"roamstats/internal/domain"
	"roamstats/internal/ports"
)

// DrawerKeyMap defines key bindings for the stats drawer
type DrawerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Load    key.Binding
	LoadAll key.Binding
	Reload  key.Binding
	Open    key.Binding
	Copy    key.Binding
	Close   key.Binding
}

var DrawerKeys = DrawerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Load: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "load"),
	),
	LoadAll: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "load all"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "s"),
		key.WithHelp("esc", "close"),
	),
}

// StatUpdatedMsg reports that a stat started or finished loading
type StatUpdatedMsg struct {
	Key domain.Key
}

// CloseDrawerMsg asks the app to hide the drawer
type CloseDrawerMsg struct{}

// DrawerModel is the stats side panel
type DrawerModel struct {
	ViewState

	loader *stats.Loader
	nav    ports.PageNavigator
	clip   ports.Clipboard
	graph  string

	rows     []application.Row
	cursor   int
	open     bool
	autoLoad bool
	spinner  spinner.Model
}

// NewDrawerModel creates a closed drawer. nav and clip may be nil.
func NewDrawerModel(loader *stats.Loader, nav ports.PageNavigator, clip ports.Clipboard, graph string) *DrawerModel {
	return &DrawerModel{
		loader: loader,
		nav:    nav,
		clip:   clip,
		graph:  graph,
		rows:   application.Layout(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(styles.Spinner),
		),
	}
}

var _ tea.Model = (*DrawerModel)(nil)

// Init returns nil. The app arms the single WaitForUpdate.
func (m *DrawerModel) Init() tea.Cmd {
	return nil
}

// IsOpen reports whether the drawer is visible
func (m *DrawerModel) IsOpen() bool {
	return m.open
}

// AutoLoad reports whether the drawer was opened with auto-load on
func (m *DrawerModel) AutoLoad() bool {
	return m.autoLoad
}

// Cursor returns the selected row index
func (m *DrawerModel) Cursor() int {
	return m.cursor
}

// Open shows the drawer with fresh state. With autoLoad every stat is
// requested right away; otherwise each row shows a load trigger.
func (m *DrawerModel) Open(autoLoad bool) tea.Cmd {
	m.loader.Reset()
	m.open = true
	m.autoLoad = autoLoad
	m.cursor = 0
	if autoLoad {
		m.loader.LoadAll()
	}
	return m.spinner.Tick
}

// Close hides the drawer. Queries already dispatched keep running.
func (m *DrawerModel) Close() {
	m.open = false
}

// WaitForUpdate blocks on the loader's update stream. Keep exactly one of
// these in flight: StatUpdatedMsg handling re-arms it.
func (m *DrawerModel) WaitForUpdate() tea.Cmd {
	updates := m.loader.Updates()
	return func() tea.Msg {
		k, ok := <-updates
		if !ok {
			return nil
		}
		return StatUpdatedMsg{Key: k}
	}
}

// LoadAll requests every stat
func (m *DrawerModel) LoadAll() {
	m.loader.LoadAll()
}

// Copy writes the current stats to the clipboard
func (m *DrawerModel) Copy() tea.Cmd {
	if m.clip == nil {
		return Toast("Clipboard not available", true)
	}
	text := application.FormatReport(m.graph, m.loader.Snapshot())
	clip := m.clip
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			return ToastMsg{Text: fmt.Sprintf("Copy failed: %v", err), IsErr: true}
		}
		return ToastMsg{Text: "Stats copied to clipboard"}
	}
}

// Update handles messages for the drawer
func (m *DrawerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StatUpdatedMsg:
		return m, m.WaitForUpdate()

	case spinner.TickMsg:
		if !m.open {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.open {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *DrawerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DrawerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, DrawerKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, DrawerKeys.Load):
		for _, k := range m.rows[m.cursor].Keys {
			m.loader.Load(k)
		}
	case key.Matches(msg, DrawerKeys.LoadAll):
		m.loader.LoadAll()
	case key.Matches(msg, DrawerKeys.Reload):
		m.loader.Reset()
		m.loader.LoadAll()
	case key.Matches(msg, DrawerKeys.Open):
		return m.openPage(m.rows[m.cursor])
	case key.Matches(msg, DrawerKeys.Copy):
		return m.Copy()
	case key.Matches(msg, DrawerKeys.Close):
		return func() tea.Msg { return CloseDrawerMsg{} }
	}
	return nil
}

func (m *DrawerModel) openPage(row application.Row) tea.Cmd {
	title, ok := rowPage(row)
	if !ok {
		return Toast("No page for "+row.Label, true)
	}
	if m.nav == nil {
		return Toast("Navigation not available", true)
	}
	nav := m.nav
	return func() tea.Msg {
		if err := commands.NewOpenPageCommand(nav, title).Execute(context.Background()); err != nil {
			return ToastMsg{Text: fmt.Sprintf("Open %s: %v", title, err), IsErr: true}
		}
		return ToastMsg{Text: "Opened " + title}
	}
}

func rowPage(row application.Row) (string, bool) {
	if len(row.Keys) == 0 {
		return "", false
	}
	return commands.PageForKey(row.Keys[0])
}

// View renders the drawer, or nothing when closed
func (m *DrawerModel) View() string {
	if !m.open {
		return ""
	}

	snap := m.loader.Snapshot()
	vb := NewViewBuilder()
	vb.Title("Graph Database stats")
	if m.graph != "" {
		vb.Subtitle(m.graph)
	}

	for i, row := range m.rows {
		vb.Line(m.renderRow(row, snap, i == m.cursor))
	}
	vb.BlankLine()

	if n := m.loader.Loading(); n > 0 {
		vb.Muted(fmt.Sprintf("%s loading %d queries", m.spinner.View(), n))
	} else if !m.autoLoad && !snap.Complete() {
		vb.Muted("auto-load is off")
	}
	vb.Help(DrawerKeys.Load, DrawerKeys.LoadAll, DrawerKeys.Open, DrawerKeys.Copy, DrawerKeys.Close)

	style := styles.Drawer
	if m.Height > 0 {
		style = style.Height(m.Height)
	}
	return style.Render(vb.StringUnwrapped())
}

func (m *DrawerModel) renderRow(row application.Row, snap domain.Results, selected bool) string {
	label := row.Label
	if _, ok := rowPage(row); ok {
		label = styles.RowLink.Render(label)
	} else {
		label = styles.RowLabel.Render(label)
	}

	values := make([]string, len(row.Keys))
	for i, k := range row.Keys {
		values[i] = m.renderValue(k, snap)
	}

	prefix := "  "
	if selected {
		prefix = styles.RowSelected.Render("›") + " "
	}
	return fmt.Sprintf("%s%s  %s", prefix, label, strings.Join(values, " / "))
}

func (m *DrawerModel) renderValue(k domain.Key, snap domain.Results) string {
	if v, ok := snap.Get(k); ok {
		return styles.RowValue.Render(application.FormatInt(v))
	}
	if m.loader.IsLoading(k) {
		return m.spinner.View()
	}
	if !m.autoLoad {
		return styles.LoadTrigger.Render("load")
	}
	return application.Placeholder
}
