package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ObservedProvider is a decorator that logs the outcome of every model
// request. The clients built on top of the provider swallow errors and
// hand the UI fallback content, so this log is the only place where an
// operator can tell "the AI returned a fallback" from "the AI is down".
type ObservedProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithObservability wraps a Provider with request/outcome logging.
// A nil logger disables logging.
func WithObservability(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObservedProvider{inner: p, logger: logger}
}

func (o *ObservedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := o.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", o.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
		zap.Bool("structured", req.Schema != nil),
	}

	if err != nil {
		fields = append(fields,
			zap.String("error_kind", ErrorKind(err)),
			zap.Error(err),
		)
		o.logger.Warn("llm request failed", fields...)
		return nil, err
	}

	fields = append(fields,
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.String("stop_reason", resp.StopReason),
	)
	o.logger.Info("llm request ok", fields...)

	return resp, nil
}

func (o *ObservedProvider) ModelID() string {
	return o.inner.ModelID()
}
