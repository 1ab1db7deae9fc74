package jump

import "github.com/lgoulart/jumpmap/pkg/oracle"

// Predicate decides, from one oracle snapshot, whether a jump's flight
// phase is complete. The executor evaluates it after every flight tick.
type Predicate func(oracle.State) bool

// LandingConverged is the default landing-convergence predicate: the
// character is not falling, not jumping, has zero speed, and IsLanded
// reads false.
//
// The IsLanded condition is deliberately inverted relative to what the
// name suggests: in the observed simulation the flag pulses true on the
// touchdown frame and clears once the character settles, so requiring it
// false selects the rest state rather than the touchdown frame. Whether
// that distinction is intentional in the simulation is unresolved; the
// predicate is a named, swappable value so the current behavior stays
// pinned by tests while leaving room to substitute a corrected predicate.
func LandingConverged(st oracle.State) bool {
	return !st.IsFalling && !st.IsJumping && st.Speed == 0 && !st.IsLanded
}
