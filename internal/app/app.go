// Package app wires the screens together into the root Bubble Tea
// program. All services arrive through Options; nothing is looked up
// from globals.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/mathgeniusvn/mathgenius/internal/config"
	"github.com/mathgeniusvn/mathgenius/internal/explain"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/router"
	"github.com/mathgeniusvn/mathgenius/internal/screen"
	"github.com/mathgeniusvn/mathgenius/internal/screens/home"
	"github.com/mathgeniusvn/mathgenius/internal/screens/practice"
	"github.com/mathgeniusvn/mathgenius/internal/tutor"
	"github.com/mathgeniusvn/mathgenius/internal/ui/layout"
)

// Options carries the application's services and configuration.
type Options struct {
	Generator problem.Generator
	Explainer *explain.Explainer
	Tutor     *tutor.Tutor
	Defaults  config.Defaults
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int

	// Session tally shown in the header.
	answered int
	correct  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	homeScreen := home.New(home.Options{
		Generator: opts.Generator,
		Explainer: opts.Explainer,
		Tutor:     opts.Tutor,
		Defaults:  opts.Defaults,
	})
	return AppModel{
		router: router.New(homeScreen),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case practice.AnsweredMsg:
		m.answered++
		if msg.Correct {
			m.correct++
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.correct, m.answered, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quay lại"},
			{Key: "Ctrl+C", Description: "Thoát"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Di chuyển"},
		{Key: "◂▸", Description: "Chọn"},
		{Key: "Enter", Description: "Xác nhận"},
		{Key: "Ctrl+C", Description: "Thoát"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
