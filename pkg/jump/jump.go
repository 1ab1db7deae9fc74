// Package jump executes single controlled jumps against a simulation oracle.
//
// A jump experiment is fully described by a [Config] (where the character
// starts) and an [Action] (which direction to jump and how long the jump
// button is charged). The [Executor] drives the oracle through the charge
// and flight phases and returns a single [Outcome]; the [Verifier] repeats
// identical experiments to check that the oracle really is deterministic.
package jump

import (
	"github.com/lgoulart/jumpmap/pkg/errors"
	"github.com/lgoulart/jumpmap/pkg/oracle"
)

// Direction is the horizontal direction of a jump.
type Direction string

const (
	DirectionRight Direction = "right"
	DirectionLeft  Direction = "left"
)

// Directions is the full direction set swept by exploration.
var Directions = []Direction{DirectionRight, DirectionLeft}

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionRight, DirectionLeft:
		return Direction(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAction, "invalid direction: %q (must be right or left)", s)
}

// ChargeCommand returns the per-tick input held during the charge phase:
// the direction with the jump button down.
func (d Direction) ChargeCommand() oracle.Command {
	if d == DirectionLeft {
		return oracle.CommandLeftJump
	}
	return oracle.CommandRightJump
}

// ReleaseCommand returns the per-tick input held during the flight phase:
// the direction alone.
func (d Direction) ReleaseCommand() oracle.Command {
	if d == DirectionLeft {
		return oracle.CommandLeft
	}
	return oracle.CommandRight
}

// Config is the takeoff configuration of one experiment. It fully
// determines the oracle's starting state (modulo the oracle's own level
// geometry) and is immutable once passed to the executor.
type Config struct {
	Level     int     `json:"level"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	WindPhase float64 `json:"wind_phase"`
}

// Validate checks all fields against the documented ranges. It is called
// by the executor before any oracle interaction; out-of-range values are
// rejected, never clamped.
func (c Config) Validate() error {
	if err := errors.ValidateLevel(c.Level); err != nil {
		return err
	}
	if err := errors.ValidateCoordinates(c.X, c.Y); err != nil {
		return err
	}
	return errors.ValidateWindPhase(c.WindPhase)
}

// Action is one point of the discrete action space: a direction and the
// number of ticks the jump button is held.
type Action struct {
	Direction    Direction `json:"direction"`
	ChargeFrames int       `json:"charge_frames"`
}

// Validate checks the action fields.
func (a Action) Validate() error {
	if _, err := ParseDirection(string(a.Direction)); err != nil {
		return err
	}
	return errors.ValidateChargeFrames(a.ChargeFrames)
}

// Outcome is the oracle state read once landing convergence is detected.
// Converged is false when the flight-phase safety cap expired first; such
// outcomes are degraded but still returned, and callers decide whether to
// keep them.
type Outcome struct {
	Level     int     `json:"level"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Converged bool    `json:"converged"`
}

// Equal reports value equality on (Level, X, Y). Exact field comparison,
// no tolerance — this is the comparison the determinism verifier uses.
// Converged is diagnostic and excluded.
func (o Outcome) Equal(other Outcome) bool {
	return o.Level == other.Level && o.X == other.X && o.Y == other.Y
}
