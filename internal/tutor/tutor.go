package tutor

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mathgeniusvn/mathgenius/internal/llm"
)

// Fallback strings. Reply never errors and never returns an empty
// string.
const (
	errFallback   = "Đã xảy ra lỗi kết nối."
	emptyFallback = "Xin lỗi, tôi không hiểu câu hỏi."
)

// Config holds chat settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxTurns bounds how many transcript messages are replayed into
	// each request. Zero or negative replays the full history.
	MaxTurns int
}

// DefaultConfig returns recommended chat settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
		MaxTurns:    30,
	}
}

// Tutor answers free-form math questions, replaying prior chat turns for
// context.
type Tutor struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a Tutor. A nil logger disables diagnostics.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Tutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tutor{provider: provider, config: cfg, logger: logger}
}

// Reply answers the student's question given the chat history so far.
// history must not yet contain the question; callers append the user
// turn and the returned reply to their transcript themselves. Any
// failure yields a fixed user-facing string instead of an error.
func (t *Tutor) Reply(ctx context.Context, history []Message, question string) string {
	ctx = llm.WithPurpose(ctx, "tutor-chat")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(history, question, t.config.MaxTurns)},
		},
		MaxTokens:   t.config.MaxTokens,
		Temperature: t.config.Temperature,
	}

	resp, err := t.provider.Generate(ctx, req)
	if err != nil {
		t.logger.Warn("tutor reply fell back",
			zap.String("error_kind", llm.ErrorKind(err)),
			zap.Error(err))
		return errFallback
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		t.logger.Warn("tutor reply fell back",
			zap.String("error_kind", "empty_response"))
		return emptyFallback
	}
	return text
}
