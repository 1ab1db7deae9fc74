// Package store archives completed mapping runs.
//
// A run bundles the sweep inputs with every record it produced, so a
// stored run can be re-graphed and re-rendered later without touching the
// oracle. Two backends ship: a file store for CLI usage and a MongoDB
// store for shared archives.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
)

// Run is one archived mapping run: the inputs that produced it plus the
// full record list.
type Run struct {
	ID        string    `json:"id" bson:"_id"`
	Label     string    `json:"label,omitempty" bson:"label,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	Takeoffs   []explore.Position `json:"takeoffs" bson:"takeoffs"`
	Charges    []int              `json:"charges" bson:"charges"`
	Directions []jump.Direction   `json:"directions" bson:"directions"`
	WindPhase  float64            `json:"wind_phase" bson:"wind_phase"`
	Options    explore.Options    `json:"options" bson:"options"`

	Records []explore.Record `json:"records" bson:"records"`
}

// NewRun creates a run with a fresh ID and timestamp.
func NewRun(label string, takeoffs []explore.Position, charges []int, directions []jump.Direction, windPhase float64, opts explore.Options, records []explore.Record) *Run {
	return &Run{
		ID:         uuid.NewString(),
		Label:      label,
		CreatedAt:  time.Now().UTC(),
		Takeoffs:   takeoffs,
		Charges:    charges,
		Directions: directions,
		WindPhase:  windPhase,
		Options:    opts,
		Records:    records,
	}
}

// Summary is the listing view of a run, without the record payload.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Label     string    `json:"label,omitempty" bson:"label,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Records   int       `json:"records" bson:"records"`
}

// Store is the interface for run archive backends.
type Store interface {
	// Put stores a run. An existing run with the same ID is replaced.
	Put(ctx context.Context, run *Run) error

	// Get retrieves a run by ID. A missing run is a RUN_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns run summaries, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
