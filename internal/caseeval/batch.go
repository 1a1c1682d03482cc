package caseeval

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/edlume/caselab/internal/casegen"
	"github.com/edlume/caselab/internal/extract"
)

// EvaluateAll scores many scenario/response pairs. Scenarios are processed
// in fixed-size chunks; calls within a chunk run concurrently and the whole
// chunk is awaited before the next begins, so at most chunkSize provider
// calls are ever in flight. Results correspond index-for-index with the
// input scenarios regardless of completion order.
//
// A scenario with no entry in responsesByID is evaluated against an empty
// response rather than skipped: every scenario yields exactly one result.
func (e *Evaluator) EvaluateAll(ctx context.Context, scenarios []casegen.Scenario, responsesByID map[string]StudentResponse, opts Options) BatchResult {
	if len(scenarios) == 0 {
		return BatchResult{Results: []Result{}}
	}

	results := make([]Result, len(scenarios))

	for chunkStart := 0; chunkStart < len(scenarios); chunkStart += chunkSize {
		chunkEnd := min(chunkStart+chunkSize, len(scenarios))

		var g errgroup.Group
		for i := chunkStart; i < chunkEnd; i++ {
			g.Go(func() error {
				results[i] = e.Evaluate(ctx, scenarios[i], responsesByID[scenarios[i].ID], opts)
				return nil
			})
		}
		// Evaluate never errors; Wait is the chunk barrier.
		_ = g.Wait()
	}

	var sum float64
	for _, r := range results {
		sum += r.OverallScore
	}
	overall := extract.Round1(sum / float64(len(results)))

	return BatchResult{
		Results:      results,
		OverallScore: overall,
		Passed:       overall >= passThreshold,
	}
}
