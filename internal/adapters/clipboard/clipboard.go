package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"roamstats/internal/ports"
)

// ErrUnsupported is returned when no clipboard utility is installed
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// System writes to the OS clipboard
type System struct{}

var _ ports.Clipboard = System{}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
