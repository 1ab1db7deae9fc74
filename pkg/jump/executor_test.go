package jump

import (
	"context"
	"testing"

	"github.com/lgoulart/jumpmap/pkg/errors"
	"github.com/lgoulart/jumpmap/pkg/oracle"
)

// stubOracle replays a fixed sequence of states, one per flight tick, and
// records every command it receives. It lets tests pin executor behavior
// against exact state sequences the scripted oracle cannot easily produce.
type stubOracle struct {
	states     []oracle.State
	reads      int
	configured int
	advances   []advanceCall
}

type advanceCall struct {
	frames int
	cmd    oracle.Command
}

func (s *stubOracle) Configure(ctx context.Context, level int, x, y, windPhase float64) error {
	s.configured++
	s.reads = 0
	return nil
}

func (s *stubOracle) Advance(ctx context.Context, frames int, cmd oracle.Command) error {
	s.advances = append(s.advances, advanceCall{frames, cmd})
	return nil
}

func (s *stubOracle) ReadState(ctx context.Context) (oracle.State, error) {
	if s.reads < len(s.states) {
		st := s.states[s.reads]
		s.reads++
		return st, nil
	}
	return s.states[len(s.states)-1], nil
}

func (s *stubOracle) Close() error { return nil }

var (
	airborne = oracle.State{X: 240, Y: 280, IsJumping: true, Speed: 3}
	falling  = oracle.State{X: 250, Y: 290, IsFalling: true, Speed: 2}
	touched  = oracle.State{X: 260, Y: 298, IsLanded: true}
	rest     = oracle.State{X: 260, Y: 298}
)

func TestExecutePhases(t *testing.T) {
	stub := &stubOracle{states: []oracle.State{airborne, falling, touched, rest}}
	e := NewExecutor(stub)

	out, err := e.Execute(context.Background(), Config{Level: 0, X: 230, Y: 298}, Action{DirectionRight, 15})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if stub.configured != 1 {
		t.Errorf("oracle configured %d times, want 1", stub.configured)
	}

	// Charge phase: one Advance with all charge frames and jump held.
	first := stub.advances[0]
	if first.frames != 15 || first.cmd != oracle.CommandRightJump {
		t.Errorf("charge phase = %+v, want 15 frames of right+jump", first)
	}

	// Flight phase: single-frame release ticks until the rest state.
	flight := stub.advances[1:]
	if len(flight) != 4 {
		t.Fatalf("flight ticks = %d, want 4 (three non-converged states plus rest)", len(flight))
	}
	for _, call := range flight {
		if call.frames != 1 || call.cmd != oracle.CommandRight {
			t.Errorf("flight tick = %+v, want 1 frame of right", call)
		}
	}

	if !out.Converged || out.X != 260 || out.Y != 298 {
		t.Errorf("outcome = %+v, want converged at (260, 298)", out)
	}
}

func TestExecuteSkipsChargeForZeroFrames(t *testing.T) {
	stub := &stubOracle{states: []oracle.State{rest}}
	e := NewExecutor(stub)

	if _, err := e.Execute(context.Background(), Config{X: 230, Y: 298}, Action{DirectionLeft, 0}); err != nil {
		t.Fatal(err)
	}
	if len(stub.advances) != 1 || stub.advances[0].cmd != oracle.CommandLeft {
		t.Errorf("advances = %+v, want a single left release tick", stub.advances)
	}
}

func TestExecuteTouchdownPulseIsNotConvergence(t *testing.T) {
	// IsLanded=true with everything else at rest must NOT converge; the
	// predicate selects the settled frame after the pulse clears.
	stub := &stubOracle{states: []oracle.State{touched, rest}}
	e := NewExecutor(stub)

	if _, err := e.Execute(context.Background(), Config{X: 230, Y: 298}, Action{DirectionRight, 5}); err != nil {
		t.Fatal(err)
	}
	if stub.reads != 2 {
		t.Errorf("converged after %d reads, want 2 (touchdown pulse skipped)", stub.reads)
	}
}

func TestExecuteCapExpiry(t *testing.T) {
	// A state that never satisfies the predicate exhausts the cap and is
	// returned as a degraded outcome, not an error.
	stub := &stubOracle{states: []oracle.State{falling}}
	e := NewExecutor(stub, WithMaxFlightFrames(10))

	out, err := e.Execute(context.Background(), Config{X: 230, Y: 298}, Action{DirectionRight, 5})
	if err != nil {
		t.Fatalf("cap expiry should not error, got %v", err)
	}
	if out.Converged {
		t.Error("cap expiry must mark the outcome non-converged")
	}
	if out.X != falling.X || out.Y != falling.Y {
		t.Errorf("degraded outcome = %+v, want last observed state", out)
	}
	if got := len(stub.advances) - 1; got != 10 {
		t.Errorf("flight ticks = %d, want exactly the cap (10)", got)
	}
}

func TestExecuteValidatesBeforeOracle(t *testing.T) {
	stub := &stubOracle{states: []oracle.State{rest}}
	e := NewExecutor(stub)

	tests := []struct {
		name   string
		cfg    Config
		action Action
		code   errors.Code
	}{
		{"BadX", Config{X: 500, Y: 298}, Action{DirectionRight, 5}, errors.ErrCodeInvalidConfig},
		{"BadLevel", Config{Level: 50, X: 230, Y: 298}, Action{DirectionRight, 5}, errors.ErrCodeInvalidConfig},
		{"BadDirection", Config{X: 230, Y: 298}, Action{"up", 5}, errors.ErrCodeInvalidAction},
		{"NegativeCharge", Config{X: 230, Y: 298}, Action{DirectionRight, -1}, errors.ErrCodeInvalidAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Execute(context.Background(), tt.cfg, tt.action)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
	if stub.configured != 0 {
		t.Errorf("oracle touched %d times by invalid input, want 0", stub.configured)
	}
}

func TestExecuteSwappablePredicate(t *testing.T) {
	// A predicate that accepts the touchdown pulse converges one tick
	// earlier, demonstrating the asymmetric check is replaceable.
	stub := &stubOracle{states: []oracle.State{touched, rest}}
	e := NewExecutor(stub, WithPredicate(func(st oracle.State) bool {
		return !st.IsFalling && !st.IsJumping && st.Speed == 0
	}))

	if _, err := e.Execute(context.Background(), Config{X: 230, Y: 298}, Action{DirectionRight, 5}); err != nil {
		t.Fatal(err)
	}
	if stub.reads != 1 {
		t.Errorf("converged after %d reads, want 1 with the relaxed predicate", stub.reads)
	}
}

func TestExecuteAgainstScriptOracle(t *testing.T) {
	// End-to-end against the deterministic scripted oracle: the reference
	// scenario of a medium right jump from (230, 298) on level 0.
	e := NewExecutor(oracle.NewScript())
	out, err := e.Execute(context.Background(), Config{Level: 0, X: 230, Y: 298}, Action{DirectionRight, 15})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Converged {
		t.Error("script jump should converge well within the cap")
	}
	if out.Level != 0 || out.X <= 230 || out.Y != 298 {
		t.Errorf("outcome = %+v, want level 0, x > 230, y = 298", out)
	}
}
