package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.phase == phaseLoading {
		return renderLoading(width)
	}
	if p.current == nil {
		return ""
	}

	var b strings.Builder

	// Selection info line.
	info := fmt.Sprintf("  %s · %s · %s",
		p.input.Grade, p.input.Chapter, p.input.Difficulty)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(p.current.Question))
	b.WriteString("\n\n")

	if problem.IsFallback(p.current) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(p.current.Hint + "\n\nNhấn Enter để thử lại."))
		return b.String()
	}

	// Answer area.
	if p.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.mc.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Đáp án: " + p.textInput.View()))
	}
	b.WriteString("\n")

	// Hint, on demand.
	if p.showHint && p.current.Hint != "" {
		hint := theme.Hint.Width(min(width-8, 70)).Render("Gợi ý: " + p.current.Hint)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n")
	}

	if p.phase == phaseFeedback {
		b.WriteString("\n")
		b.WriteString(p.renderFeedback(width))
	}

	return b.String()
}

func (p *PracticeScreen) renderFeedback(width int) string {
	var b strings.Builder

	if p.correct {
		b.WriteString(theme.Correct.
			Width(width).
			Align(lipgloss.Center).
			Render("Chính xác!"))
	} else {
		b.WriteString(theme.Incorrect.
			Width(width).
			Align(lipgloss.Center).
			Render("Chưa đúng"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Đáp án đúng: " + p.current.CorrectAnswer))
	}
	b.WriteString("\n\n")

	switch {
	case p.explaining:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Đang tạo lời giải thích..."))
		b.WriteString("\n\n")
	case p.explanation != "":
		expl := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(p.explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expl))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nhấn N để sang câu tiếp theo"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Đang tạo câu hỏi...")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
