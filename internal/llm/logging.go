package llm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every outbound model request
// with latency, token usage, and a generated request ID.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := l.inner.Complete(ctx, req)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("served_by", resp.Model),
		)
	}

	if err != nil {
		l.log.Warn("model request failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	l.log.Info("model request complete", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
