// Package pipeline provides the core mapping pipeline for jumpmap.
//
// This package implements the complete sweep → graph → render pipeline
// that can be used by the CLI and the HTTP API. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Sweep: Drive the oracle over the action space (optionally layered)
//     and collect jump records
//  2. Graph: Build the reachability multigraph from the records
//  3. Render: Generate output in various formats (DOT, SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Sweeping is the expensive stage, so its results cache under a key
// derived from every input that affects the records.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Takeoffs: explore.Positions(0, 298, []int{230}),
//	    Charges:  []int{5, 15, 30, 60},
//	    Formats:  []string{"svg"},
//	    Oracle:   orc,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgoulart/jumpmap/pkg/cache"
	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/oracle"
	"github.com/lgoulart/jumpmap/pkg/reach"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultCharges is the charge set swept when none is given. The values
// cover a tap, a short press, a deliberate press, and a full hold.
var DefaultCharges = []int{5, 15, 30, 60}

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the mapping pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Sweep options
	Takeoffs   []explore.Position `json:"takeoffs"`
	Charges    []int              `json:"charges,omitempty"`
	Directions []jump.Direction   `json:"directions,omitempty"`
	WindPhase  float64            `json:"wind_phase,omitempty"`
	Expansion  explore.Options    `json:"expansion,omitempty"`
	Refresh    bool               `json:"refresh,omitempty"`

	// Render options
	Formats         []string `json:"formats,omitempty"`
	Detailed        bool     `json:"detailed,omitempty"`
	TierTolerance   float64  `json:"tier_tolerance,omitempty"`
	VerticalSpacing float64  `json:"vertical_spacing,omitempty"`

	// Runtime options (not serialized)
	Oracle oracle.Oracle `json:"-"`
	Logger *log.Logger   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records is the flat record list the sweep produced.
	Records []explore.Record

	// RecordsHash is the content hash of the record list.
	RecordsHash string

	// Graph is the reachability multigraph.
	Graph *reach.Graph

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	NodeCount   int
	EdgeCount   int
	SweepTime   time.Duration
	GraphTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SweepHit  bool // Whether sweep records came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSweep(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSweep checks required fields for sweeping and applies sweep
// defaults.
func (o *Options) ValidateForSweep() error {
	if len(o.Takeoffs) == 0 {
		return fmt.Errorf("at least one takeoff position is required")
	}

	if len(o.Charges) == 0 {
		o.Charges = DefaultCharges
	}
	if len(o.Directions) == 0 {
		o.Directions = jump.Directions
	}
	if o.Expansion.MaxLayers == 0 {
		o.Expansion = explore.DefaultOptions()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.TierTolerance == 0 {
		o.TierTolerance = reach.DefaultTierTolerance
	}
	if o.VerticalSpacing == 0 {
		o.VerticalSpacing = reach.DefaultVerticalSpacing
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SweepKeyOpts returns cache key options for the sweep stage.
func (o *Options) SweepKeyOpts() cache.SweepKeyOpts {
	dirs := make([]string, len(o.Directions))
	for i, d := range o.Directions {
		dirs[i] = string(d)
	}
	return cache.SweepKeyOpts{
		Charges:          o.Charges,
		Directions:       dirs,
		WindPhase:        o.WindPhase,
		MaxLayers:        o.Expansion.MaxLayers,
		RestrictByY:      o.Expansion.RestrictByY,
		YTolerance:       o.Expansion.YTolerance,
		RevisitPositions: o.Expansion.RevisitPositions,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:          format,
		Detailed:        o.Detailed,
		TierTolerance:   o.TierTolerance,
		VerticalSpacing: o.VerticalSpacing,
	}
}
