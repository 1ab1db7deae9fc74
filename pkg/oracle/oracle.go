// Package oracle defines the boundary to the external platformer simulation.
//
// The simulation is a single mutable stateful process treated as a
// deterministic black box: given identical command sequences from an
// identical reset state it must produce bit-identical results. The package
// models that contract as a small capability interface (Configure, Advance,
// ReadState) so any deterministic implementation is substitutable — the
// instrumented game process over WebSocket ([Remote]) or an in-process
// scripted fake for tests ([Script]).
//
// Nothing in this package re-derives physics; the oracle's behavior is
// accepted as ground truth.
package oracle

import (
	"context"
	"fmt"
)

// Command is a single per-tick input held against the simulation.
//
// The numeric values match the action encoding of the instrumented game
// (0=right, 1=left, 2=right+jump, 3=left+jump); CommandNone means no input
// for the tick.
type Command int

const (
	CommandRight     Command = 0
	CommandLeft      Command = 1
	CommandRightJump Command = 2
	CommandLeftJump  Command = 3
	CommandNone      Command = -1
)

// String returns the wire label for the command.
func (c Command) String() string {
	switch c {
	case CommandRight:
		return "right"
	case CommandLeft:
		return "left"
	case CommandRightJump:
		return "right+jump"
	case CommandLeftJump:
		return "left+jump"
	case CommandNone:
		return "none"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// HoldsJump reports whether the jump button is held by this command.
func (c Command) HoldsJump() bool {
	return c == CommandRightJump || c == CommandLeftJump
}

// State is a read-only snapshot of the simulation after a tick.
//
// Speed is the character's current physics speed; the landing-convergence
// predicate in pkg/jump requires it to be exactly zero, so oracles must
// report it unrounded.
type State struct {
	Level     int     `json:"level"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	IsFalling bool    `json:"is_falling"`
	IsJumping bool    `json:"is_jumping"`
	Speed     float64 `json:"speed"`
	IsLanded  bool    `json:"is_landed"`
}

// Position returns the state's coordinate pair.
func (s State) Position() (float64, float64) { return s.X, s.Y }

// RuntimeConfig carries the mode switches the simulation reads once at
// construction. The instrumented game originally toggled these through
// ambient environment variables; here each flag is an explicit typed field
// passed to the adapter constructor and never mutated afterwards.
type RuntimeConfig struct {
	// Headless disables rendering in the game process. Required for CI.
	Headless bool
	// FPS is the target tick rate. Mapping runs use a high value so the
	// game advances as fast as the host allows.
	FPS int
	// Paused starts the simulation paused. Experiments require it false.
	Paused bool
}

// DefaultRuntimeConfig is the configuration used by mapping runs.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{Headless: true, FPS: 10000}
}

// Oracle is the capability interface to the simulation.
//
// Implementations are stateful and not safe for concurrent use: at most one
// experiment may be in flight against an instance, and every experiment
// depends on the previous Configure having fully reset the state.
type Oracle interface {
	// Configure resets the simulation to the given takeoff state. It must
	// validate ranges (level 0-42, x 0-480, y 0-360, windPhase 0-2π) and
	// reject out-of-range values before touching simulation state.
	Configure(ctx context.Context, level int, x, y, windPhase float64) error

	// Advance steps the simulation the given number of ticks while holding
	// cmd as the input for every tick.
	Advance(ctx context.Context, frames int, cmd Command) error

	// ReadState returns the current simulation snapshot.
	ReadState(ctx context.Context) (State, error)

	// Close releases the underlying simulation resources.
	Close() error
}
