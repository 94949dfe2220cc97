package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathgeniusvn/mathgenius/internal/curriculum"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/screen"
)

// stubGenerator implements problem.Generator for testing.
type stubGenerator struct {
	problem *problem.Problem
	calls   int
}

func (g *stubGenerator) Generate(_ context.Context, _ problem.GenerateInput) *problem.Problem {
	g.calls++
	return g.problem
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testInput() problem.GenerateInput {
	return problem.GenerateInput{
		Grade:      curriculum.Grade8,
		Textbook:   curriculum.KetNoi,
		Chapter:    "Chương I: Đa thức",
		Difficulty: curriculum.Easy,
	}
}

func shortAnswerProblem() *problem.Problem {
	return &problem.Problem{
		Question:      "2 + 2 = ?",
		Kind:          problem.KindShortAnswer,
		CorrectAnswer: "4",
		Hint:          "Đếm trên ngón tay.",
	}
}

func testScreen() (*PracticeScreen, *stubGenerator) {
	gen := &stubGenerator{problem: shortAnswerProblem()}
	return New(gen, nil, testInput()), gen
}

func deliverProblem(p *PracticeScreen) {
	var scr screen.Screen = p
	scr, _ = scr.Update(problemReadyMsg{genID: p.genID, problem: shortAnswerProblem()})
	_ = scr
}

func TestPractice_InitStartsGeneration(t *testing.T) {
	p, gen := testScreen()

	cmd := p.Init()
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	msg := cmd()

	ready, ok := msg.(problemReadyMsg)
	if !ok {
		t.Fatalf("expected problemReadyMsg, got %T", msg)
	}
	if ready.genID != p.genID {
		t.Errorf("genID = %d, want %d", ready.genID, p.genID)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestPractice_ProblemReadyEntersAnswering(t *testing.T) {
	p, _ := testScreen()
	p.Init()

	deliverProblem(p)

	if p.phase != phaseAnswering {
		t.Errorf("phase = %v, want answering", p.phase)
	}
	if p.current == nil || p.current.Question != "2 + 2 = ?" {
		t.Error("expected the delivered problem to be current")
	}
}

func TestPractice_StaleProblemDropped(t *testing.T) {
	p, _ := testScreen()
	p.Init()

	// A result from a superseded request must not surface.
	p.Update(problemReadyMsg{genID: p.genID - 1, problem: shortAnswerProblem()})

	if p.phase != phaseLoading {
		t.Errorf("phase = %v, want loading after stale result", p.phase)
	}
	if p.current != nil {
		t.Error("stale problem must not become current")
	}
}

func TestPractice_BlankSubmissionIgnored(t *testing.T) {
	p, _ := testScreen()
	p.Init()
	deliverProblem(p)

	p.textInput.Model.SetValue("   ")
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseAnswering {
		t.Errorf("phase = %v, want answering after blank submit", p.phase)
	}
}

func TestPractice_CorrectSubmissionShowsFeedback(t *testing.T) {
	p, _ := testScreen()
	p.Init()
	deliverProblem(p)

	p.textInput.Model.SetValue(" 4 ")
	_, cmd := p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", p.phase)
	}
	if !p.correct {
		t.Error("expected the answer to be marked correct")
	}
	if cmd == nil {
		t.Fatal("expected an AnsweredMsg command")
	}
}

func TestPractice_WrongSubmission(t *testing.T) {
	p, _ := testScreen()
	p.Init()
	deliverProblem(p)

	p.textInput.Model.SetValue("5")
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", p.phase)
	}
	if p.correct {
		t.Error("expected the answer to be marked wrong")
	}
}

func TestPractice_HintToggle(t *testing.T) {
	p, _ := testScreen()
	p.Init()
	deliverProblem(p)

	p.Update(specialKey(tea.KeyTab))
	if !p.showHint {
		t.Error("expected hint to be shown after Tab")
	}
	p.Update(specialKey(tea.KeyTab))
	if p.showHint {
		t.Error("expected hint to be hidden after second Tab")
	}
}

func TestPractice_NextProblemBumpsGenID(t *testing.T) {
	p, gen := testScreen()
	p.Init()
	deliverProblem(p)

	p.textInput.Model.SetValue("4")
	p.Update(specialKey(tea.KeyEnter))

	before := p.genID
	_, cmd := p.Update(keyPress('n'))

	if p.genID != before+1 {
		t.Errorf("genID = %d, want %d", p.genID, before+1)
	}
	if p.phase != phaseLoading {
		t.Errorf("phase = %v, want loading", p.phase)
	}
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	cmd()
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestPractice_ExplanationGuardedByGenID(t *testing.T) {
	p, _ := testScreen()
	p.Init()
	deliverProblem(p)

	p.Update(explanationReadyMsg{genID: p.genID - 1, text: "stale"})
	if p.explanation != "" {
		t.Error("stale explanation must be dropped")
	}

	p.Update(explanationReadyMsg{genID: p.genID, text: "fresh"})
	if p.explanation != "fresh" {
		t.Errorf("explanation = %q, want fresh", p.explanation)
	}
}

func TestPractice_MultipleChoiceSubmit(t *testing.T) {
	p, _ := testScreen()
	p.Init()

	mc := &problem.Problem{
		Question:      "2^3 = ?",
		Kind:          problem.KindMultipleChoice,
		Options:       []string{"A. 6", "B. 8", "C. 9"},
		CorrectAnswer: "B. 8",
	}
	p.Update(problemReadyMsg{genID: p.genID, problem: mc})

	if !p.mcActive {
		t.Fatal("expected multiple-choice mode")
	}
	if p.mc.CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", p.mc.CorrectIndex)
	}

	// Move to option B and submit.
	p.Update(specialKey(tea.KeyDown))
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", p.phase)
	}
	if !p.correct {
		t.Error("expected B. 8 to be correct")
	}
}

func TestPractice_FallbackProblemRetriesOnEnter(t *testing.T) {
	p, gen := testScreen()
	p.Init()

	p.Update(problemReadyMsg{genID: p.genID, problem: problem.Fallback()})

	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if p.phase != phaseLoading {
		t.Errorf("phase = %v, want loading", p.phase)
	}
	if cmd == nil {
		t.Fatal("expected a regeneration command")
	}
	cmd()
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}
