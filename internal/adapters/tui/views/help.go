package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"roamstats/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	commands func() []string
}

// NewHelpModel creates a new help view model. commands lists the palette
// entries shown in the help screen.
func NewHelpModel(commands func() []string) *HelpModel {
	return &HelpModel{commands: commands}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToMainMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Roam Stats Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Graph statistics for Roam Research"))
	b.WriteString("\n\n")

	b.WriteString(styles.SectionLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(":", "Command palette"))
	b.WriteString(helpLine("s", "Toggle stats drawer"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.SectionLabel.Render("Stats drawer"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("enter / l", "Load the selected row"))
	b.WriteString(helpLine("L", "Load every stat"))
	b.WriteString(helpLine("r", "Reset and reload"))
	b.WriteString(helpLine("o", "Open the tag or blockquote page"))
	b.WriteString(helpLine("y", "Copy stats to clipboard"))
	b.WriteString(helpLine("esc / s", "Close drawer"))
	b.WriteString("\n")

	if m.commands != nil {
		if labels := m.commands(); len(labels) > 0 {
			b.WriteString(styles.SectionLabel.Render("Commands"))
			b.WriteString("\n")
			for _, l := range labels {
				b.WriteString(styles.MutedText.Render("  " + l))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
