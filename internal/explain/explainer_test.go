package explain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mathgeniusvn/mathgenius/internal/llm"
)

func TestExplain_ReturnsModelText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Em trả lời đúng. Ta có 2 + 2 = 4."),
	})
	e := New(mock, DefaultConfig(), nil)

	got := e.Explain(context.Background(), "2 + 2 = ?", "4", "4")

	if got != "Em trả lời đúng. Ta có 2 + 2 = 4." {
		t.Errorf("unexpected explanation: %q", got)
	}
}

func TestExplain_PromptContainsAllThreeParts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	e := New(mock, DefaultConfig(), nil)

	e.Explain(context.Background(), "2 + 2 = ?", "5", "4")

	call := mock.LastCall()
	if call.Schema != nil {
		t.Error("explanation requests must not carry a schema")
	}
	msg := call.Messages[0].Content
	for _, want := range []string{"Bài toán: 2 + 2 = ?", "Đáp án đúng: 4", "Học sinh trả lời: 5"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestExplain_ProviderFailureYieldsFixedString(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider error
	e := New(mock, DefaultConfig(), nil)

	got := e.Explain(context.Background(), "q", "a", "b")

	if got != "Đã xảy ra lỗi khi tạo lời giải thích." {
		t.Errorf("unexpected fallback: %q", got)
	}
}

func TestExplain_EmptyResponseYieldsFixedString(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("   ")})
	e := New(mock, DefaultConfig(), nil)

	got := e.Explain(context.Background(), "q", "a", "b")

	if got != "Không thể tạo lời giải thích." {
		t.Errorf("unexpected fallback: %q", got)
	}
}
