package llm

import (
	"context"

	"go.uber.org/zap"
)

// Failover chains a primary and a fallback provider behind the Provider
// interface. The primary gets exactly one attempt; any error — network,
// auth, rate limit, malformed request — switches to the fallback for
// exactly one attempt with the same prompts. There is no same-provider
// retry and never a third attempt.
//
// Response.Source records which role actually answered, so downstream
// metadata always names the provider whose text was parsed.
type Failover struct {
	primary  Provider
	fallback Provider
	log      *zap.Logger
}

// NewFailover creates a Failover pair.
func NewFailover(primary, fallback Provider, log *zap.Logger) *Failover {
	if log == nil {
		log = zap.NewNop()
	}
	return &Failover{primary: primary, fallback: fallback, log: log}
}

// Complete tries the primary provider, then the fallback. Returns
// *ErrAllProvidersFailed when both attempts error.
func (f *Failover) Complete(ctx context.Context, req Request) (*Response, error) {
	resp, primaryErr := f.primary.Complete(ctx, req)
	if primaryErr == nil {
		resp.Source = SourcePrimary
		return resp, nil
	}

	f.log.Warn("primary provider failed, switching to fallback",
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("primary_model", f.primary.ModelID()),
		zap.String("fallback_model", f.fallback.ModelID()),
		zap.Error(primaryErr),
	)

	resp, fallbackErr := f.fallback.Complete(ctx, req)
	if fallbackErr != nil {
		return nil, &ErrAllProvidersFailed{Primary: primaryErr, Fallback: fallbackErr}
	}
	resp.Source = SourceFallback
	return resp, nil
}

// ModelID returns the primary provider's model identifier.
func (f *Failover) ModelID() string {
	return f.primary.ModelID()
}
