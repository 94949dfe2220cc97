// Package explain asks the model to judge a submitted answer and walk
// through the solution, teacher-style.
package explain

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mathgeniusvn/mathgenius/internal/llm"
)

const systemPrompt = `Hãy đóng vai giáo viên dạy toán THCS, nhận xét câu trả lời của học sinh (đúng hay sai) và giải thích chi tiết từng bước cách giải bài toán một cách dễ hiểu, thân thiện. Sử dụng định dạng Markdown cho công thức toán học nếu cần.`

// Fallback strings. The explainer never errors and never returns an
// empty string.
const (
	errFallback   = "Đã xảy ra lỗi khi tạo lời giải thích."
	emptyFallback = "Không thể tạo lời giải thích."
)

// Config holds explanation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended explanation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}

// Explainer produces free-text solution explanations.
type Explainer struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates an Explainer. A nil logger disables diagnostics.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Explainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Explainer{provider: provider, config: cfg, logger: logger}
}

// Explain judges the student's answer and explains the solution.
// No output schema: the model replies in free text. Any failure returns
// a fixed user-facing string instead of an error.
func (e *Explainer) Explain(ctx context.Context, question, userAnswer, correctAnswer string) string {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(question, userAnswer, correctAnswer)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		e.logger.Warn("explanation fell back",
			zap.String("error_kind", llm.ErrorKind(err)),
			zap.Error(err))
		return errFallback
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		e.logger.Warn("explanation fell back",
			zap.String("error_kind", "empty_response"))
		return emptyFallback
	}
	return text
}

func buildUserMessage(question, userAnswer, correctAnswer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bài toán: %s\n", question)
	fmt.Fprintf(&b, "Đáp án đúng: %s\n", correctAnswer)
	fmt.Fprintf(&b, "Học sinh trả lời: %s\n", userAnswer)

	return b.String()
}
