package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathgeniusvn/mathgenius/internal/tutor"
	"github.com/mathgeniusvn/mathgenius/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	// Reserve two lines for the input row and its separator.
	transcriptHeight := height - 2
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	lines := c.transcriptLines(width)

	// Window the lines: scroll counts lines hidden below the view.
	end := len(lines) - c.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := end - transcriptHeight
	if start < 0 {
		start = 0
	}
	visible := lines[start:end]

	var b strings.Builder
	b.WriteString(strings.Join(visible, "\n"))
	for i := len(visible); i < transcriptHeight; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0))))
	b.WriteString("\n")

	if c.waiting {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Gia sư đang trả lời..."))
	} else {
		b.WriteString("  " + c.input.View())
	}

	return b.String()
}

// transcriptLines renders every message as wrapped, labelled lines.
func (c *ChatScreen) transcriptLines(width int) []string {
	wrapWidth := width - 12
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	userLabel := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Bạn:")
	modelLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Gia sư:")
	body := lipgloss.NewStyle().Width(wrapWidth).Foreground(theme.Text)

	var lines []string
	for _, m := range c.transcript.Messages() {
		label := modelLabel
		if m.Role == tutor.RoleUser {
			label = userLabel
		}
		lines = append(lines, "  "+label)
		wrapped := body.Render(m.Text)
		for _, l := range strings.Split(wrapped, "\n") {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}
	return lines
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
