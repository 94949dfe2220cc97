// Package home implements the start screen: curriculum selection plus
// the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathgeniusvn/mathgenius/internal/config"
	"github.com/mathgeniusvn/mathgenius/internal/curriculum"
	"github.com/mathgeniusvn/mathgenius/internal/explain"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/router"
	"github.com/mathgeniusvn/mathgenius/internal/screen"
	"github.com/mathgeniusvn/mathgenius/internal/screens/chat"
	"github.com/mathgeniusvn/mathgenius/internal/screens/practice"
	"github.com/mathgeniusvn/mathgenius/internal/tutor"
	"github.com/mathgeniusvn/mathgenius/internal/ui/components"
	"github.com/mathgeniusvn/mathgenius/internal/ui/theme"
)

// emptyCatalogNotice is shown when the selected grade/textbook pair has
// no chapters. Practice is disabled until the selection changes.
const emptyCatalogNotice = "Chưa có dữ liệu chương trình cho lựa chọn này."

// Options carries the services the home screen hands to its children.
type Options struct {
	Generator problem.Generator
	Explainer *explain.Explainer
	Tutor     *tutor.Tutor
	Defaults  config.Defaults
}

// Picker/menu rows, top to bottom.
const (
	rowGrade = iota
	rowTextbook
	rowChapter
	rowDifficulty
	rowPractice
	rowChat
	rowQuit
	rowCount
)

// HomeScreen is the entry screen of the application.
type HomeScreen struct {
	opts Options

	grade      components.Picker
	textbook   components.Picker
	chapter    components.Picker
	difficulty components.Picker

	focus int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Configured defaults preselect the
// pickers when they name a known grade/textbook/difficulty.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		opts:       opts,
		grade:      components.NewPicker("Lớp", gradeLabels(), opts.Defaults.Grade),
		textbook:   components.NewPicker("Bộ sách", textbookLabels(), opts.Defaults.Textbook),
		difficulty: components.NewPicker("Mức độ", difficultyLabels(), opts.Defaults.Difficulty),
	}
	h.chapter = components.NewPicker("Chương", h.chapterLabels(), "")
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Trang chủ"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.focus > 0 {
			h.focus--
			if h.focus == rowPractice && h.catalogEmpty() {
				h.focus--
			}
		}
	case "down", "j":
		if h.focus < rowCount-1 {
			h.focus++
			if h.focus == rowPractice && h.catalogEmpty() {
				h.focus++
			}
		}
	case "left", "h":
		h.cyclePicker(-1)
	case "right", "l":
		h.cyclePicker(1)
	case "enter":
		return h.activate()
	}

	return h, nil
}

// cyclePicker moves the focused picker and refreshes the chapter list
// when the grade or textbook changed.
func (h *HomeScreen) cyclePicker(dir int) {
	var p *components.Picker
	switch h.focus {
	case rowGrade:
		p = &h.grade
	case rowTextbook:
		p = &h.textbook
	case rowChapter:
		p = &h.chapter
	case rowDifficulty:
		p = &h.difficulty
	default:
		return
	}

	if dir < 0 {
		p.Prev()
	} else {
		p.Next()
	}

	if h.focus == rowGrade || h.focus == rowTextbook {
		h.chapter.SetOptions(h.chapterLabels())
	}
}

func (h *HomeScreen) activate() (screen.Screen, tea.Cmd) {
	switch h.focus {
	case rowPractice:
		if h.catalogEmpty() {
			return h, nil
		}
		input := h.selection()
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practice.New(h.opts.Generator, h.opts.Explainer, input),
			}
		}
	case rowChat:
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: chat.New(h.opts.Tutor)}
		}
	case rowQuit:
		return h, tea.Quit
	}
	return h, nil
}

// selection captures the current picker values as generation input.
func (h *HomeScreen) selection() problem.GenerateInput {
	return problem.GenerateInput{
		Grade:      curriculum.Grade(h.grade.Value()),
		Textbook:   curriculum.Textbook(h.textbook.Value()),
		Chapter:    h.chapter.Value(),
		Difficulty: curriculum.Difficulty(h.difficulty.Value()),
	}
}

func (h *HomeScreen) catalogEmpty() bool {
	return h.chapter.Empty()
}

func (h *HomeScreen) chapterLabels() []string {
	return curriculum.Chapters(
		curriculum.Grade(h.grade.Value()),
		curriculum.Textbook(h.textbook.Value()),
	)
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("MathGenius THCS"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Luyện toán cùng Thầy Cường"))
	b.WriteString("\n\n")

	rows := []string{
		h.grade.View(h.focus == rowGrade),
		h.textbook.View(h.focus == rowTextbook),
		h.chapter.View(h.focus == rowChapter),
		h.difficulty.View(h.focus == rowDifficulty),
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")

	if h.catalogEmpty() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("    " + emptyCatalogNotice))
		b.WriteString("\n\n")
	}

	b.WriteString(h.menuRow(rowPractice, "Bắt đầu luyện tập", h.catalogEmpty()))
	b.WriteString("\n")
	b.WriteString(h.menuRow(rowChat, "Hỏi gia sư AI", false))
	b.WriteString("\n")
	b.WriteString(h.menuRow(rowQuit, "Thoát", false))
	b.WriteString("\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width, 56)).Render(b.String()))
}

func (h *HomeScreen) menuRow(row int, label string, disabled bool) string {
	switch {
	case disabled:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + label)
	case h.focus == row:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + label)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("    " + label)
	}
}

func gradeLabels() []string {
	grades := curriculum.Grades()
	out := make([]string, len(grades))
	for i, g := range grades {
		out[i] = string(g)
	}
	return out
}

func textbookLabels() []string {
	books := curriculum.Textbooks()
	out := make([]string, len(books))
	for i, tb := range books {
		out[i] = string(tb)
	}
	return out
}

func difficultyLabels() []string {
	diffs := curriculum.Difficulties()
	out := make([]string, len(diffs))
	for i, d := range diffs {
		out[i] = string(d)
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
