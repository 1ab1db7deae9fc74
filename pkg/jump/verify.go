package jump

import (
	"context"

	"github.com/lgoulart/jumpmap/pkg/errors"
)

// Verifier re-runs identical experiments to check oracle determinism.
//
// Determinism is a precondition of the whole mapping approach, not
// something the executor can enforce, so it is checked empirically: the
// same (config, action) pair is executed from a fully reset oracle N
// times and all outcomes must compare exactly equal.
type Verifier struct {
	executor *Executor
}

// NewVerifier creates a verifier on top of an executor.
func NewVerifier(e *Executor) *Verifier {
	return &Verifier{executor: e}
}

// Verify runs the experiment repetitions times and reports whether every
// outcome matched the first. The ordered outcome list is returned for
// diagnostics regardless of the verdict. A single mismatch flips the
// verdict; no attempt is made to classify why outcomes diverged.
//
// Execute reconfigures the oracle at the start of every repetition, so no
// residual physics state can leak between runs.
func (v *Verifier) Verify(ctx context.Context, cfg Config, action Action, repetitions int) (bool, []Outcome, error) {
	if repetitions < 1 {
		return false, nil, errors.New(errors.ErrCodeInvalidAction, "repetitions must be at least 1, got %d", repetitions)
	}

	outcomes := make([]Outcome, 0, repetitions)
	for i := 0; i < repetitions; i++ {
		out, err := v.executor.Execute(ctx, cfg, action)
		if err != nil {
			return false, outcomes, err
		}
		outcomes = append(outcomes, out)
	}

	for _, out := range outcomes[1:] {
		if !out.Equal(outcomes[0]) {
			return false, outcomes, nil
		}
	}
	return true, outcomes, nil
}
