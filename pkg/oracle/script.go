package oracle

import (
	"context"
	"math"

	"github.com/lgoulart/jumpmap/pkg/errors"
)

// Physics constants of the scripted oracle. The values are not meant to
// reproduce the real game, only to give experiments the same observable
// shape: a charge phase, a ballistic flight, a one-tick landed pulse and a
// final rest state.
const (
	scriptWalkSpeed = 1.5  // px per grounded directional tick
	scriptJumpSpeed = 2.5  // horizontal px per airborne tick after a jump
	scriptGravity   = 0.5  // vertical acceleration per airborne tick
	scriptBaseLift  = 2.0  // initial upward speed at zero charge
	scriptLiftSlope = 0.35 // additional upward speed per charge frame
	scriptMaxCharge = 30   // charge frames beyond this add no lift
	scriptWindDrift = 0.1  // horizontal px per airborne tick at full wind
)

// Script is an in-process deterministic oracle used for tests and offline
// development. It models a flat screen with a single ground plane: jumps
// launch from the ground, follow a fixed-step ballistic arc with optional
// wind drift, land back on the ground plane, report IsLanded for exactly
// one tick, and then come to rest.
//
// The model is a pure function of the configured state and the command
// sequence, so repeated identical experiments always produce identical
// outcomes — which is what the determinism verifier exists to check.
type Script struct {
	// GroundY pins the ground plane. When zero, each Configure call uses
	// the configured y as the ground, so takeoffs start grounded. Setting
	// it explicitly lets tests start a takeoff in mid-air.
	GroundY float64

	configured bool
	ticks      int

	level     int
	x, y      float64
	windPhase float64
	groundY   float64

	charge      int
	airborne    bool
	vx, vy      float64
	landedPulse bool
}

// NewScript returns a scripted oracle with the ground plane bound to the
// configured takeoff height.
func NewScript() *Script { return &Script{} }

// Ticks returns the total number of ticks advanced since construction.
func (s *Script) Ticks() int { return s.ticks }

// Configure resets the oracle to the given takeoff state. All physics
// state from a previous experiment is discarded.
func (s *Script) Configure(ctx context.Context, level int, x, y, windPhase float64) error {
	if err := errors.ValidateLevel(level); err != nil {
		return err
	}
	if err := errors.ValidateCoordinates(x, y); err != nil {
		return err
	}
	if err := errors.ValidateWindPhase(windPhase); err != nil {
		return err
	}

	s.level = level
	s.x = x
	s.y = y
	s.windPhase = windPhase
	s.groundY = s.GroundY
	if s.groundY == 0 {
		s.groundY = y
	}

	s.charge = 0
	s.airborne = y < s.groundY
	s.vx = 0
	s.vy = 0
	s.landedPulse = false
	s.configured = true
	return nil
}

// Advance steps the simulation while holding cmd for every tick.
func (s *Script) Advance(ctx context.Context, frames int, cmd Command) error {
	if !s.configured {
		return errors.New(errors.ErrCodeOracleUnavailable, "script oracle not configured")
	}
	for range frames {
		s.tick(cmd)
		s.ticks++
	}
	return nil
}

// ReadState returns the current snapshot.
func (s *Script) ReadState(ctx context.Context) (State, error) {
	if !s.configured {
		return State{}, errors.New(errors.ErrCodeOracleUnavailable, "script oracle not configured")
	}
	st := State{
		Level:    s.level,
		X:        s.x,
		Y:        s.y,
		IsLanded: s.landedPulse,
	}
	if s.airborne {
		st.IsJumping = s.vy < 0
		st.IsFalling = s.vy >= 0
		st.Speed = math.Abs(s.vy)
	}
	return st, nil
}

// Close marks the oracle unusable.
func (s *Script) Close() error {
	s.configured = false
	return nil
}

func (s *Script) tick(cmd Command) {
	if s.landedPulse {
		s.landedPulse = false
	}

	if s.airborne {
		s.flightTick()
		return
	}

	switch {
	case cmd.HoldsJump():
		if s.charge < scriptMaxCharge {
			s.charge++
		}
	case s.charge > 0:
		s.launch(cmd)
		s.flightTick()
	case cmd == CommandRight:
		s.x = clampX(s.x + scriptWalkSpeed)
	case cmd == CommandLeft:
		s.x = clampX(s.x - scriptWalkSpeed)
	}
}

func (s *Script) launch(cmd Command) {
	dir := 0.0
	switch cmd {
	case CommandRight:
		dir = 1
	case CommandLeft:
		dir = -1
	}
	s.vx = dir * scriptJumpSpeed
	s.vy = -(scriptBaseLift + scriptLiftSlope*float64(s.charge))
	s.charge = 0
	s.airborne = true
}

func (s *Script) flightTick() {
	s.x = clampX(s.x + s.vx + scriptWindDrift*math.Sin(s.windPhase))
	s.y += s.vy
	s.vy += scriptGravity

	if s.vy > 0 && s.y >= s.groundY {
		s.y = s.groundY
		s.airborne = false
		s.vx = 0
		s.vy = 0
		s.landedPulse = true
	}
}

func clampX(x float64) float64 {
	return math.Min(math.Max(x, errors.MinX), errors.MaxX)
}

var _ Oracle = (*Script)(nil)
