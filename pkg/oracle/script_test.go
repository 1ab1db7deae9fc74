package oracle

import (
	"context"
	"testing"

	"github.com/lgoulart/jumpmap/pkg/errors"
)

func TestScriptConfigureValidation(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		x, y      float64
		windPhase float64
		wantErr   bool
	}{
		{"Valid", 0, 230, 298, 0, false},
		{"LevelTooHigh", 43, 230, 298, 0, true},
		{"XOutOfRange", 0, 481, 298, 0, true},
		{"YOutOfRange", 0, 230, -5, 0, true},
		{"WindPhaseTooHigh", 0, 230, 298, 6.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScript()
			err := s.Configure(context.Background(), tt.level, tt.x, tt.y, tt.windPhase)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Configure error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && errors.GetCode(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("error code = %q, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestScriptRequiresConfigure(t *testing.T) {
	s := NewScript()
	if err := s.Advance(context.Background(), 1, CommandRight); !errors.Is(err, errors.ErrCodeOracleUnavailable) {
		t.Errorf("Advance before Configure = %v, want ORACLE_UNAVAILABLE", err)
	}
	if _, err := s.ReadState(context.Background()); !errors.Is(err, errors.ErrCodeOracleUnavailable) {
		t.Errorf("ReadState before Configure = %v, want ORACLE_UNAVAILABLE", err)
	}
}

// driveJump charges for chargeFrames ticks then releases one tick at a time
// until the oracle reports the rest state, mirroring what the executor does.
func driveJump(t *testing.T, s *Script, charge, release Command, chargeFrames int) []State {
	t.Helper()
	ctx := context.Background()
	if err := s.Advance(ctx, chargeFrames, charge); err != nil {
		t.Fatalf("charge phase: %v", err)
	}
	var states []State
	for range 600 {
		if err := s.Advance(ctx, 1, release); err != nil {
			t.Fatalf("flight tick: %v", err)
		}
		st, err := s.ReadState(ctx)
		if err != nil {
			t.Fatalf("read state: %v", err)
		}
		states = append(states, st)
		if !st.IsFalling && !st.IsJumping && st.Speed == 0 && !st.IsLanded {
			return states
		}
	}
	t.Fatal("jump never converged")
	return nil
}

func TestScriptJumpArc(t *testing.T) {
	s := NewScript()
	if err := s.Configure(context.Background(), 0, 230, 298, 0); err != nil {
		t.Fatal(err)
	}

	states := driveJump(t, s, CommandRightJump, CommandRight, 15)

	// The arc must actually leave the ground before landing.
	sawAir := false
	sawLandedPulse := false
	for _, st := range states {
		if st.IsJumping || st.IsFalling {
			sawAir = true
		}
		if st.IsLanded {
			sawLandedPulse = true
		}
	}
	if !sawAir {
		t.Error("jump never became airborne")
	}
	if !sawLandedPulse {
		t.Error("landing never reported the IsLanded pulse")
	}

	final := states[len(states)-1]
	if final.X <= 230 {
		t.Errorf("rightward jump ended at x=%v, want > 230", final.X)
	}
	if final.Y != 298 {
		t.Errorf("flat-ground jump ended at y=%v, want 298", final.Y)
	}
}

func TestScriptJumpDeterminism(t *testing.T) {
	run := func() State {
		s := NewScript()
		if err := s.Configure(context.Background(), 0, 230, 298, 1.0); err != nil {
			t.Fatal(err)
		}
		states := driveJump(t, s, CommandLeftJump, CommandLeft, 30)
		return states[len(states)-1]
	}

	first := run()
	for range 3 {
		if got := run(); got != first {
			t.Fatalf("repeated jump diverged: %+v vs %+v", got, first)
		}
	}
}

func TestScriptChargeAffectsDistance(t *testing.T) {
	land := func(charge int) float64 {
		s := NewScript()
		if err := s.Configure(context.Background(), 0, 100, 298, 0); err != nil {
			t.Fatal(err)
		}
		states := driveJump(t, s, CommandRightJump, CommandRight, charge)
		return states[len(states)-1].X
	}

	weak, strong := land(5), land(30)
	if strong <= weak {
		t.Errorf("charge 30 landed at %v, charge 5 at %v; want strictly further", strong, weak)
	}
}

func TestScriptWalkConvergesImmediately(t *testing.T) {
	s := NewScript()
	if err := s.Configure(context.Background(), 0, 230, 298, 0); err != nil {
		t.Fatal(err)
	}
	// Zero charge means the release command just walks.
	states := driveJump(t, s, CommandRightJump, CommandRight, 0)
	if len(states) != 1 {
		t.Errorf("zero-charge action took %d ticks to converge, want 1", len(states))
	}
}

func TestScriptFallsToGroundPlane(t *testing.T) {
	s := &Script{GroundY: 298}
	if err := s.Configure(context.Background(), 0, 230, 250, 0); err != nil {
		t.Fatal(err)
	}
	states := driveJump(t, s, CommandRightJump, CommandRight, 0)
	final := states[len(states)-1]
	if final.Y != 298 {
		t.Errorf("mid-air takeoff settled at y=%v, want ground plane 298", final.Y)
	}
}

func TestScriptXClamping(t *testing.T) {
	s := NewScript()
	if err := s.Configure(context.Background(), 0, 479, 298, 0); err != nil {
		t.Fatal(err)
	}
	states := driveJump(t, s, CommandRightJump, CommandRight, 30)
	if got := states[len(states)-1].X; got > 480 {
		t.Errorf("x=%v escaped the screen, want ≤ 480", got)
	}
}
