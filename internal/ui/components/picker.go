package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/mathgeniusvn/mathgenius/internal/ui/theme"
)

// Picker cycles through a fixed list of options with left/right keys.
type Picker struct {
	Label    string
	Options  []string
	Selected int
}

// NewPicker creates a picker over options. An initial value matching one
// of the options preselects it.
func NewPicker(label string, options []string, initial string) Picker {
	p := Picker{Label: label, Options: options}
	for i, opt := range options {
		if opt == initial {
			p.Selected = i
			break
		}
	}
	return p
}

// SetOptions replaces the option list, clamping the selection.
func (p *Picker) SetOptions(options []string) {
	p.Options = options
	if p.Selected >= len(options) {
		p.Selected = 0
	}
}

// Prev moves the selection left, wrapping around.
func (p *Picker) Prev() {
	if len(p.Options) == 0 {
		return
	}
	p.Selected = (p.Selected - 1 + len(p.Options)) % len(p.Options)
}

// Next moves the selection right, wrapping around.
func (p *Picker) Next() {
	if len(p.Options) == 0 {
		return
	}
	p.Selected = (p.Selected + 1) % len(p.Options)
}

// Value returns the selected option, or "" when there are none.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Empty reports whether the picker has no options to choose from.
func (p Picker) Empty() bool {
	return len(p.Options) == 0
}

// View renders the picker as a single line.
func (p Picker) View(focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	value := p.Value()
	if value == "" {
		value = "—"
	}

	prefix := "    "
	if focused {
		prefix = "  ▸ "
	}

	return fmt.Sprintf("%s%s  %s",
		prefix,
		labelStyle.Render(fmt.Sprintf("%-12s", p.Label)),
		valueStyle.Render("◂ "+value+" ▸"),
	)
}
