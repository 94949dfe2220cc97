package problem

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mathgeniusvn/mathgenius/internal/llm"
)

// Fallback content shown when generation fails for any reason.
const (
	fallbackQuestion = "Không thể tạo câu hỏi lúc này. Vui lòng thử lại."
	fallbackHint     = "Kiểm tra kết nối mạng hoặc API key."
)

// Generator produces practice problems.
type Generator interface {
	// Generate produces a single problem for the given selection.
	// It never fails: any transport, schema or parse error yields the
	// fixed fallback problem, so callers need no error branch.
	Generate(ctx context.Context, input GenerateInput) *Problem
}

// LLMGenerator implements Generator using the model provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates an LLMGenerator. A nil logger disables diagnostics.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *LLMGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, config: cfg, logger: logger}
}

// problemOutput is the raw model response before mapping to a Problem.
type problemOutput struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Hint          string   `json:"hint"`
}

func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) *Problem {
	ctx = llm.WithPurpose(ctx, "problem-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.logger.Warn("problem generation fell back",
			zap.String("error_kind", llm.ErrorKind(err)),
			zap.Error(err))
		return Fallback()
	}

	var raw problemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		g.logger.Warn("problem generation fell back",
			zap.String("error_kind", "parse"),
			zap.Error(err))
		return Fallback()
	}
	if raw.Question == "" {
		g.logger.Warn("problem generation fell back",
			zap.String("error_kind", "empty_question"))
		return Fallback()
	}

	return &Problem{
		Question:      raw.Question,
		Kind:          Kind(raw.Type),
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
		Hint:          raw.Hint,
	}
}

// Fallback returns the deterministic problem used when generation fails.
// It is well-formed under ProblemSchema's required fields except for the
// intentionally empty answer, so the UI renders it like any other problem.
func Fallback() *Problem {
	return &Problem{
		Question:      fallbackQuestion,
		Kind:          KindShortAnswer,
		CorrectAnswer: "",
		Hint:          fallbackHint,
	}
}

// IsFallback reports whether p is the generation-failure placeholder.
// The practice screen uses this to skip answer submission for it.
func IsFallback(p *Problem) bool {
	return p != nil && p.Question == fallbackQuestion && p.CorrectAnswer == ""
}
