package errors

import "math"

// Coordinate and level bounds for the simulated world. A screen is 480
// pixels wide and 360 high; the tower spans levels 0 through 42. Values
// outside these ranges are rejected before any oracle interaction, never
// clamped.
const (
	MinX = 0.0
	MaxX = 480.0

	MinY = 0.0
	MaxY = 360.0

	MinLevel = 0
	MaxLevel = 42
)

// MaxWindPhase is the exclusive upper bound of the wind oscillation phase.
var MaxWindPhase = 2 * math.Pi

// ValidateX validates a horizontal player coordinate.
func ValidateX(x float64) error {
	if x < MinX || x > MaxX {
		return New(ErrCodeInvalidConfig, "invalid x coordinate: %v (must be %v-%v)", x, MinX, MaxX)
	}
	return nil
}

// ValidateY validates a vertical player coordinate.
func ValidateY(y float64) error {
	if y < MinY || y > MaxY {
		return New(ErrCodeInvalidConfig, "invalid y coordinate: %v (must be %v-%v)", y, MinY, MaxY)
	}
	return nil
}

// ValidateCoordinates validates both coordinates of a player position.
func ValidateCoordinates(x, y float64) error {
	if err := ValidateX(x); err != nil {
		return err
	}
	return ValidateY(y)
}

// ValidateLevel validates a level identifier.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return New(ErrCodeInvalidConfig, "invalid level: %d (must be %d-%d)", level, MinLevel, MaxLevel)
	}
	return nil
}

// ValidateWindPhase validates a wind oscillation phase in [0, 2π).
func ValidateWindPhase(phase float64) error {
	if phase < 0 || phase >= MaxWindPhase {
		return New(ErrCodeInvalidConfig, "invalid wind phase: %v (must be 0 to 2π)", phase)
	}
	return nil
}

// ValidateChargeFrames validates a jump-button charge duration.
func ValidateChargeFrames(frames int) error {
	if frames < 0 {
		return New(ErrCodeInvalidAction, "charge frames must be non-negative, got %d", frames)
	}
	return nil
}
