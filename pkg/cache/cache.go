// Package cache provides pluggable byte caching for pipeline stages.
//
// Mapping runs are expensive: every record is a real-time (or fast-forward)
// drive of the simulation. Caching lets a re-render or a re-grouping of an
// existing sweep skip the oracle entirely. Three backends ship: a
// file-based cache for CLI usage, a Redis cache for shared setups, and a
// null cache that disables caching.
package cache

import (
	"context"
	"time"
)

// Default TTLs per stage. Sweep results are the expensive artifact and
// keep the longest; rendered artifacts are cheap to rebuild.
const (
	TTLSweep    = 30 * 24 * time.Hour
	TTLGraph    = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SweepKeyOpts captures every input that changes the records a sweep
// produces. Two sweeps with equal opts and equal takeoff sets are
// interchangeable.
type SweepKeyOpts struct {
	Charges          []int    `json:"charges"`
	Directions       []string `json:"directions"`
	WindPhase        float64  `json:"wind_phase"`
	MaxLayers        int      `json:"max_layers"`
	RestrictByY      bool     `json:"restrict_by_y"`
	YTolerance       float64  `json:"y_tolerance"`
	RevisitPositions bool     `json:"revisit_positions"`
}

// GraphKeyOpts captures graph construction options.
type GraphKeyOpts struct{}

// ArtifactKeyOpts captures rendering options.
type ArtifactKeyOpts struct {
	Format          string  `json:"format"`
	Detailed        bool    `json:"detailed"`
	TierTolerance   float64 `json:"tier_tolerance"`
	VerticalSpacing float64 `json:"vertical_spacing"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// SweepKey generates a key for sweep results (record lists).
	// positionsHash identifies the initial takeoff set.
	SweepKey(positionsHash string, opts SweepKeyOpts) string

	// GraphKey generates a key for a built graph, derived from the hash
	// of the records it was built from.
	GraphKey(recordsHash string, opts GraphKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the hash of the graph it renders.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hashed, prefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SweepKey generates a key for sweep results.
func (k *DefaultKeyer) SweepKey(positionsHash string, opts SweepKeyOpts) string {
	return hashKey("sweep", positionsHash, opts)
}

// GraphKey generates a key for a built graph.
func (k *DefaultKeyer) GraphKey(recordsHash string, opts GraphKeyOpts) string {
	return hashKey("graph", recordsHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
