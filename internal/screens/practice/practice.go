// Package practice implements the problem-solving screen: generate a
// problem, collect an answer, evaluate it, and explain the solution.
package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/mathgeniusvn/mathgenius/internal/explain"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/router"
	"github.com/mathgeniusvn/mathgenius/internal/screen"
	"github.com/mathgeniusvn/mathgenius/internal/ui/components"
	"github.com/mathgeniusvn/mathgenius/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
)

// PracticeScreen runs the generate/answer/explain loop for one
// curriculum selection.
type PracticeScreen struct {
	generator problem.Generator
	explainer *explain.Explainer
	input     problem.GenerateInput

	phase   phase
	current *problem.Problem

	// genID increments on every generation request. Async results
	// carrying an older ID are ignored.
	genID int

	textInput components.TextInput
	mc        components.MultiChoice
	mcActive  bool

	showHint    bool
	correct     bool
	explanation string
	explaining  bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given selection.
func New(generator problem.Generator, explainer *explain.Explainer, input problem.GenerateInput) *PracticeScreen {
	return &PracticeScreen{
		generator: generator,
		explainer: explainer,
		input:     input,
		textInput: components.NewTextInput("Nhập đáp án...", 60),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.nextProblem()
}

func (p *PracticeScreen) Title() string {
	return "Luyện tập"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Trả lời"},
			{Key: "Tab", Description: "Gợi ý"},
			{Key: "Esc", Description: "Quay lại"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "N", Description: "Câu tiếp theo"},
			{Key: "Esc", Description: "Quay lại"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quay lại"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemReadyMsg:
		return p.handleProblemReady(msg)

	case explanationReadyMsg:
		if msg.genID != p.genID {
			return p, nil
		}
		p.explaining = false
		p.explanation = msg.text
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseAnswering && !p.mcActive {
		var cmd tea.Cmd
		p.textInput, cmd = p.textInput.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) handleProblemReady(msg problemReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.genID != p.genID {
		// A newer request is in flight; drop this result.
		return p, nil
	}

	p.current = msg.problem
	p.phase = phaseAnswering
	p.showHint = false
	p.explanation = ""
	p.explaining = false

	if msg.problem.Kind == problem.KindMultipleChoice && len(msg.problem.Options) > 0 {
		p.mcActive = true
		p.mc = components.NewMultiChoice(msg.problem.Options, correctOptionIndex(msg.problem))
	} else {
		p.mcActive = false
		p.textInput = components.NewTextInput("Nhập đáp án...", 60)
	}

	return p, p.textInput.Init()
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseLoading:
		if key == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil

	case phaseAnswering:
		switch key {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			p.showHint = !p.showHint
			return p, nil
		case "enter":
			return p.submit()
		}

		if p.mcActive {
			var cmd tea.Cmd
			p.mc, cmd = p.mc.Update(msg)
			return p, cmd
		}
		var cmd tea.Cmd
		p.textInput, cmd = p.textInput.Update(msg)
		return p, cmd

	case phaseFeedback:
		switch key {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "enter":
			return p, p.nextProblem()
		}
	}

	return p, nil
}

// submit evaluates the current answer. A blank submission is ignored:
// no evaluation runs and the screen stays in the answering phase.
func (p *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	if p.current == nil {
		return p, nil
	}

	// Fallback problems have no answer to check; only a retry makes
	// sense.
	if problem.IsFallback(p.current) {
		return p, p.nextProblem()
	}

	var answer string
	if p.mcActive {
		answer = p.mc.Value()
	} else {
		answer = p.textInput.Value()
	}

	if !problem.Submittable(answer) {
		return p, nil
	}

	p.correct = problem.Evaluate(p.current, answer)
	p.phase = phaseFeedback

	if p.mcActive {
		p.mc.Submitted = true
		p.mc.ChosenIndex = p.mc.Selected
	} else {
		p.textInput.Submit(p.correct)
	}

	correct := p.correct
	cmds := []tea.Cmd{
		func() tea.Msg { return AnsweredMsg{Correct: correct} },
	}
	if p.explainer != nil {
		cmds = append(cmds, p.fetchExplanation(answer))
	}
	return p, tea.Batch(cmds...)
}

// nextProblem kicks off asynchronous generation for a fresh problem.
func (p *PracticeScreen) nextProblem() tea.Cmd {
	p.genID++
	p.phase = phaseLoading
	p.current = nil

	genID := p.genID
	gen := p.generator
	input := p.input
	return func() tea.Msg {
		return problemReadyMsg{
			genID:   genID,
			problem: gen.Generate(context.Background(), input),
		}
	}
}

// fetchExplanation asks for the solution walkthrough asynchronously.
func (p *PracticeScreen) fetchExplanation(answer string) tea.Cmd {
	p.explaining = true

	genID := p.genID
	expl := p.explainer
	prob := p.current
	return func() tea.Msg {
		return explanationReadyMsg{
			genID: genID,
			text:  expl.Explain(context.Background(), prob.Question, answer, prob.CorrectAnswer),
		}
	}
}

// correctOptionIndex finds which option the canonical answer names, for
// highlighting after submission. -1 when none matches.
func correctOptionIndex(pr *problem.Problem) int {
	for i, opt := range pr.Options {
		if problem.Evaluate(pr, opt) {
			return i
		}
	}
	return -1
}
