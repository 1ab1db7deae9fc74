package jump

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgoulart/jumpmap/pkg/observability"
	"github.com/lgoulart/jumpmap/pkg/oracle"
)

// DefaultMaxFlightFrames bounds the flight phase. A jump that has not
// converged after this many ticks is returned as-is with Converged=false
// rather than failing: the character may be stuck in a fall the predicate
// never catches, and the data point is still worth inspecting.
const DefaultMaxFlightFrames = 600

// Executor drives a single oracle through jump experiments.
//
// The oracle is a shared mutable resource: no concurrent Execute calls are
// permitted against the same instance, and every call fully reconfigures
// the oracle before issuing commands, so no physics state leaks between
// experiments.
type Executor struct {
	oracle    oracle.Oracle
	converged Predicate
	maxFlight int
	logger    *log.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithPredicate replaces the landing-convergence predicate.
func WithPredicate(p Predicate) Option {
	return func(e *Executor) { e.converged = p }
}

// WithMaxFlightFrames replaces the flight-phase safety cap. Callers that
// suspect a degraded outcome can re-run with a larger cap.
func WithMaxFlightFrames(n int) Option {
	return func(e *Executor) { e.maxFlight = n }
}

// WithLogger attaches a logger for per-phase debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// NewExecutor creates an executor bound to the given oracle.
func NewExecutor(o oracle.Oracle, opts ...Option) *Executor {
	e := &Executor{
		oracle:    o,
		converged: LandingConverged,
		maxFlight: DefaultMaxFlightFrames,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one jump experiment: validate, reset the oracle to cfg,
// hold the charge command for the action's charge frames, then hold the
// release command one tick at a time until the landing predicate holds or
// the flight cap expires.
func (e *Executor) Execute(ctx context.Context, cfg Config, action Action) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := action.Validate(); err != nil {
		return Outcome{}, err
	}

	observability.Experiment().OnJumpStart(ctx, cfg.Level, cfg.X, cfg.Y, action.ChargeFrames, string(action.Direction))
	start := time.Now()

	if err := e.oracle.Configure(ctx, cfg.Level, cfg.X, cfg.Y, cfg.WindPhase); err != nil {
		observability.Experiment().OnJumpComplete(ctx, cfg.Level, cfg.X, cfg.Y, false, time.Since(start), err)
		return Outcome{}, err
	}

	if action.ChargeFrames > 0 {
		if err := e.oracle.Advance(ctx, action.ChargeFrames, action.Direction.ChargeCommand()); err != nil {
			return Outcome{}, err
		}
	}

	release := action.Direction.ReleaseCommand()
	var st oracle.State
	for tick := 0; tick < e.maxFlight; tick++ {
		if err := e.oracle.Advance(ctx, 1, release); err != nil {
			return Outcome{}, err
		}
		var err error
		st, err = e.oracle.ReadState(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if e.converged(st) {
			e.logger.Debug("jump converged",
				"charge", action.ChargeFrames,
				"direction", action.Direction,
				"ticks", tick+1,
				"x", st.X, "y", st.Y)
			observability.Experiment().OnJumpComplete(ctx, st.Level, st.X, st.Y, true, time.Since(start), nil)
			return Outcome{Level: st.Level, X: st.X, Y: st.Y, Converged: true}, nil
		}
	}

	e.logger.Warn("flight cap expired without convergence",
		"charge", action.ChargeFrames,
		"direction", action.Direction,
		"cap", e.maxFlight)
	observability.Experiment().OnJumpComplete(ctx, st.Level, st.X, st.Y, false, time.Since(start), nil)
	return Outcome{Level: st.Level, X: st.X, Y: st.Y, Converged: false}, nil
}
