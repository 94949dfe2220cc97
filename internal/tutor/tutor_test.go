package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mathgeniusvn/mathgenius/internal/llm"
)

func TestNewTranscript_StartsWithGreeting(t *testing.T) {
	tr := NewTranscript()

	if tr.Len() != 1 {
		t.Fatalf("expected 1 seeded message, got %d", tr.Len())
	}
	first := tr.Messages()[0]
	if first.Role != RoleModel {
		t.Errorf("greeting role = %q, want model", first.Role)
	}
	if first.Text != Greeting {
		t.Errorf("unexpected greeting: %q", first.Text)
	}
	if first.ID == "" {
		t.Error("expected a message ID")
	}
}

func TestTranscript_AppendPreservesOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewMessage(RoleUser, "first"))
	tr.Append(NewMessage(RoleModel, "second"))
	tr.Append(NewMessage(RoleUser, "third"))

	got := tr.Messages()
	want := []string{Greeting, "first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("message %d = %q, want %q", i, got[i].Text, text)
		}
	}
}

func TestBuildPrompt_ReplaysHistoryInOrder(t *testing.T) {
	history := []Message{
		{Role: RoleModel, Text: Greeting},
		{Role: RoleUser, Text: "Số nguyên tố là gì?"},
		{Role: RoleModel, Text: "Là số chỉ chia hết cho 1 và chính nó."},
	}

	prompt := buildPrompt(history, "Cho ví dụ?", 0)

	if !strings.HasPrefix(prompt, "Bạn là gia sư toán thân thiện. Hãy giúp học sinh giải đáp thắc mắc.\n\n") {
		t.Errorf("prompt missing preamble:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, "Học sinh: Cho ví dụ?\nGia sư:") {
		t.Errorf("prompt missing trailing cue:\n%s", prompt)
	}

	// Turns must appear in transcript order.
	idxGreeting := strings.Index(prompt, "Gia sư: "+Greeting)
	idxQ := strings.Index(prompt, "Học sinh: Số nguyên tố là gì?")
	idxA := strings.Index(prompt, "Là số chỉ chia hết cho 1 và chính nó.")
	if idxGreeting < 0 || idxQ < 0 || idxA < 0 {
		t.Fatalf("prompt missing a turn:\n%s", prompt)
	}
	if !(idxGreeting < idxQ && idxQ < idxA) {
		t.Errorf("turns out of order:\n%s", prompt)
	}
}

func TestBuildPrompt_WindowKeepsMostRecentTurns(t *testing.T) {
	var history []Message
	for i := 0; i < 10; i++ {
		history = append(history, Message{Role: RoleUser, Text: fmt.Sprintf("turn %d", i)})
	}

	prompt := buildPrompt(history, "new", 4)

	if strings.Contains(prompt, "turn 5") {
		t.Error("expected turn 5 to fall outside the window")
	}
	for i := 6; i < 10; i++ {
		if !strings.Contains(prompt, fmt.Sprintf("turn %d", i)) {
			t.Errorf("expected turn %d inside the window", i)
		}
	}
}

func TestBuildPrompt_ShortHistoryNotTruncated(t *testing.T) {
	history := []Message{
		{Role: RoleModel, Text: Greeting},
		{Role: RoleUser, Text: "one"},
	}

	prompt := buildPrompt(history, "two", 30)

	for _, want := range []string{Greeting, "one", "two"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestReply_ReturnsModelText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Ví dụ: 2, 3, 5, 7."),
	})
	tut := New(mock, DefaultConfig(), nil)

	got := tut.Reply(context.Background(), NewTranscript().Messages(), "Cho ví dụ số nguyên tố?")

	if got != "Ví dụ: 2, 3, 5, 7." {
		t.Errorf("unexpected reply: %q", got)
	}
	req := mock.LastCall()
	if req.Schema != nil {
		t.Error("chat requests must not carry a schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Học sinh: Cho ví dụ số nguyên tố?\nGia sư:") {
		t.Errorf("request missing the new question cue:\n%s", req.Messages[0].Content)
	}
}

func TestReply_ProviderFailureYieldsFixedString(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider error
	tut := New(mock, DefaultConfig(), nil)

	got := tut.Reply(context.Background(), NewTranscript().Messages(), "q")

	if got != "Đã xảy ra lỗi kết nối." {
		t.Errorf("unexpected fallback: %q", got)
	}
}

func TestReply_EmptyResponseYieldsFixedString(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  ")})
	tut := New(mock, DefaultConfig(), nil)

	got := tut.Reply(context.Background(), NewTranscript().Messages(), "q")

	if got != "Xin lỗi, tôi không hiểu câu hỏi." {
		t.Errorf("unexpected fallback: %q", got)
	}
}

func TestReply_DoesNotModifyTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	tut := New(mock, DefaultConfig(), nil)
	tr := NewTranscript()

	tut.Reply(context.Background(), tr.Messages(), "q")

	if tr.Len() != 1 {
		t.Errorf("Reply must not append; transcript has %d messages", tr.Len())
	}
}
