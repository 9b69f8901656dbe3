package llm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx, e.g. "draft-ingredients".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider logs every request with its latency and token usage.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps p with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("request_id", uuid.NewString()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Int("messages", len(req.Messages)),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	resp, err := l.inner.Generate(ctx, req)
	fields = append(fields, zap.Duration("latency", time.Since(start)))

	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.log.Info("llm request",
		append(fields,
			zap.String("served_by", resp.Model),
			zap.String("stop_reason", resp.StopReason),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)...)
	l.log.Debug("llm response", zap.ByteString("content", resp.Content))
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
