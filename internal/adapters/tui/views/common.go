package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastDuration is how long a status message stays visible
const ToastDuration = 4 * time.Second

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool

	// messageSeq identifies the current message so a stale expiry
	// does not clear a newer one.
	messageSeq int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display and returns a command that clears
// it after ToastDuration.
func (s *ViewState) SetMessage(msg string, isErr bool) tea.Cmd {
	s.Message = msg
	s.MessageErr = isErr
	s.messageSeq++
	seq := s.messageSeq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// ExpireMessage clears the message if msg belongs to it
func (s *ViewState) ExpireMessage(msg tea.Msg) bool {
	m, ok := msg.(clearMessageMsg)
	if !ok {
		return false
	}
	if m.seq == s.messageSeq {
		s.ClearMessage()
	}
	return true
}

type clearMessageMsg struct {
	seq int
}

// ToastMsg asks the app to show a transient status message
type ToastMsg struct {
	Text  string
	IsErr bool
}

// Toast returns a command that emits a ToastMsg
func Toast(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Text: text, IsErr: isErr}
	}
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToMainMsg returns to the main view
type SwitchToMainMsg struct{}

// SwitchToPaletteMsg opens the command palette
type SwitchToPaletteMsg struct{}
