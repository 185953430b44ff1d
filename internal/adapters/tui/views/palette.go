package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roamstats/internal/adapters/tui/styles"
	"roamstats/internal/ports"
)

var (
	ErrEmptyCommand     = errors.New("command label is empty")
	ErrDuplicateCommand = errors.New("command already registered")
	ErrCommandNotFound  = errors.New("command not found")
)

// PaletteKeyMap defines key bindings for the command palette
type PaletteKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Run    key.Binding
	Cancel key.Binding
}

var PaletteKeys = PaletteKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓", "down"),
	),
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PaletteModel is a filterable list of named commands
type PaletteModel struct {
	ViewState

	commands []ports.Command
	input    textinput.Model
	matches  []int
	cursor   int
}

var (
	_ ports.CommandPalette = (*PaletteModel)(nil)
	_ tea.Model            = (*PaletteModel)(nil)
)

// NewPaletteModel creates an empty palette
func NewPaletteModel() *PaletteModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = ": "
	ti.CharLimit = 80

	return &PaletteModel{input: ti}
}

func (m *PaletteModel) Init() tea.Cmd {
	return nil
}

// AddCommand registers cmd. Labels are unique.
func (m *PaletteModel) AddCommand(cmd ports.Command) error {
	if strings.TrimSpace(cmd.Label) == "" {
		return ErrEmptyCommand
	}
	if m.index(cmd.Label) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Label)
	}
	m.commands = append(m.commands, cmd)
	m.filter()
	return nil
}

// RemoveCommand unregisters the command with the given label
func (m *PaletteModel) RemoveCommand(label string) error {
	i := m.index(label)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, label)
	}
	m.commands = append(m.commands[:i], m.commands[i+1:]...)
	m.filter()
	return nil
}

// Labels returns the registered labels in registration order
func (m *PaletteModel) Labels() []string {
	labels := make([]string, len(m.commands))
	for i, c := range m.commands {
		labels[i] = c.Label
	}
	return labels
}

// Run invokes the command with the given label
func (m *PaletteModel) Run(label string) error {
	i := m.index(label)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, label)
	}
	if cb := m.commands[i].Callback; cb != nil {
		cb()
	}
	return nil
}

// Open clears the filter and focuses the input
func (m *PaletteModel) Open() tea.Cmd {
	m.input.Reset()
	m.cursor = 0
	m.filter()
	return m.input.Focus()
}

func (m *PaletteModel) index(label string) int {
	for i, c := range m.commands {
		if c.Label == label {
			return i
		}
	}
	return -1
}

// filter keeps the commands whose label contains every term of the query
func (m *PaletteModel) filter() {
	terms := strings.Fields(strings.ToLower(m.input.Value()))
	m.matches = m.matches[:0]
	for i, c := range m.commands {
		label := strings.ToLower(c.Label)
		ok := true
		for _, t := range terms {
			if !strings.Contains(label, t) {
				ok = false
				break
			}
		}
		if ok {
			m.matches = append(m.matches, i)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

// Update handles messages for the palette
func (m *PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PaletteKeys.Cancel):
			m.input.Blur()
			return m, func() tea.Msg { return SwitchToMainMsg{} }
		case key.Matches(msg, PaletteKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, PaletteKeys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, PaletteKeys.Run):
			if len(m.matches) == 0 {
				return m, nil
			}
			m.input.Blur()
			if cb := m.commands[m.matches[m.cursor]].Callback; cb != nil {
				cb()
			}
			return m, func() tea.Msg { return SwitchToMainMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

// View renders the palette
func (m *PaletteModel) View() string {
	vb := NewViewBuilder()
	vb.Line(m.input.View())
	vb.BlankLine()

	if len(m.matches) == 0 {
		vb.Muted("No matching commands")
	}
	for i, idx := range m.matches {
		label := m.commands[idx].Label
		if i == m.cursor {
			vb.Line(styles.PaletteSelected.Render("> " + label))
		} else {
			vb.Line(styles.PaletteItem.Render("  " + label))
		}
	}
	vb.BlankLine()
	vb.Help(PaletteKeys.Up, PaletteKeys.Down, PaletteKeys.Run, PaletteKeys.Cancel)

	return styles.App.Render(styles.Palette.Render(vb.StringUnwrapped()))
}
