package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Slate     = lipgloss.Color("#565C70") // drawer background

	// DrawerWidth is the fixed width of the stats side panel
	DrawerWidth = 46

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Drawer
	Drawer = lipgloss.NewStyle().
		Width(DrawerWidth).
		Padding(1, 2).
		Background(Slate).
		Foreground(lipgloss.Color("#D1D5DB"))

	DrawerTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	RowLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	RowLink = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D3D3D3")).
		Underline(true)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowValue = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	LoadTrigger = lipgloss.NewStyle().
			Foreground(Warning)

	Spinner = lipgloss.NewStyle().
		Foreground(Secondary)

	// Palette
	Palette = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	PaletteItem = lipgloss.NewStyle()

	PaletteSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	SectionLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
