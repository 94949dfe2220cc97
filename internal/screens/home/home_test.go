package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathgeniusvn/mathgenius/internal/config"
	"github.com/mathgeniusvn/mathgenius/internal/router"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome() *HomeScreen {
	return New(Options{})
}

func TestHome_DefaultsPreselectPickers(t *testing.T) {
	h := New(Options{Defaults: config.Defaults{
		Grade:      "Lớp 9",
		Textbook:   "Cánh Diều",
		Difficulty: "Vận dụng cao",
	}})

	if h.grade.Value() != "Lớp 9" {
		t.Errorf("grade = %q, want Lớp 9", h.grade.Value())
	}
	if h.textbook.Value() != "Cánh Diều" {
		t.Errorf("textbook = %q, want Cánh Diều", h.textbook.Value())
	}
	if h.difficulty.Value() != "Vận dụng cao" {
		t.Errorf("difficulty = %q, want Vận dụng cao", h.difficulty.Value())
	}
}

func TestHome_UnknownDefaultFallsBackToFirstOption(t *testing.T) {
	h := New(Options{Defaults: config.Defaults{Grade: "Lớp 13"}})

	if h.grade.Value() != "Lớp 6" {
		t.Errorf("grade = %q, want Lớp 6", h.grade.Value())
	}
}

func TestHome_ChaptersFollowGradeAndTextbook(t *testing.T) {
	h := testHome()

	before := h.chapter.Value()
	if before == "" {
		t.Fatal("expected chapters for the initial selection")
	}

	// Cycle the grade; the chapter list must be rebuilt.
	h.focus = rowGrade
	h.Update(specialKey(tea.KeyRight))

	after := h.chapter.Value()
	if after == "" {
		t.Fatal("expected chapters after grade change")
	}
	if after == before {
		t.Errorf("chapter list did not change with the grade: %q", after)
	}
}

func TestHome_StartPracticePushesScreen(t *testing.T) {
	h := testHome()
	h.focus = rowPractice

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen.Title() != "Luyện tập" {
		t.Errorf("pushed screen = %q, want Luyện tập", push.Screen.Title())
	}
}

func TestHome_ChatPushesScreen(t *testing.T) {
	h := testHome()
	h.focus = rowChat

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen.Title() != "Gia sư AI" {
		t.Errorf("pushed screen = %q, want Gia sư AI", push.Screen.Title())
	}
}

func TestHome_EmptyCatalogDisablesPractice(t *testing.T) {
	h := testHome()
	h.chapter.SetOptions(nil)

	h.focus = rowPractice
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("practice must be disabled with no chapters")
	}

	view := h.View(100, 30)
	if !strings.Contains(view, emptyCatalogNotice) {
		t.Error("expected the empty-catalog notice in the view")
	}
}

func TestHome_FocusSkipsDisabledPractice(t *testing.T) {
	h := testHome()
	h.chapter.SetOptions(nil)

	h.focus = rowDifficulty
	h.Update(specialKey(tea.KeyDown))

	if h.focus == rowPractice {
		t.Error("focus must skip the disabled practice row")
	}
	if h.focus != rowChat {
		t.Errorf("focus = %d, want chat row %d", h.focus, rowChat)
	}
}

func TestHome_SelectionCapturesPickers(t *testing.T) {
	h := testHome()

	input := h.selection()
	if string(input.Grade) != h.grade.Value() {
		t.Errorf("grade = %q, want %q", input.Grade, h.grade.Value())
	}
	if input.Chapter != h.chapter.Value() {
		t.Errorf("chapter = %q, want %q", input.Chapter, h.chapter.Value())
	}
}
