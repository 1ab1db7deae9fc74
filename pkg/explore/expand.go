package explore

import (
	"context"
	"math"
	"time"

	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/observability"
)

// Expansion defaults taken from the reference mapping runs.
const (
	DefaultMaxLayers  = 3
	DefaultYTolerance = 3.0
)

// Options controls a frontier expansion.
type Options struct {
	// MaxLayers is the fixed expansion depth. The expansion always runs
	// this many layers; an empty frontier yields empty layers rather than
	// terminating early.
	MaxLayers int `json:"max_layers"`

	// RestrictByY admits a landing into the next frontier only when it
	// moved vertically by more than YTolerance pixels. Without it every
	// landing is admitted.
	RestrictByY bool `json:"restrict_by_y"`

	// YTolerance is the minimum |y_out - y_in| for admission when
	// RestrictByY is set.
	YTolerance float64 `json:"y_tolerance"`

	// RevisitPositions disables the visited-position check, so a landing
	// already explored in an earlier layer is expanded again. The default
	// skips such positions; re-expanding them only repeats experiments
	// whose outcomes are already recorded.
	RevisitPositions bool `json:"revisit_positions"`
}

// DefaultOptions returns the standard expansion settings: three layers,
// y-restricted admission at the default tolerance, visited positions
// skipped.
func DefaultOptions() Options {
	return Options{
		MaxLayers:   DefaultMaxLayers,
		RestrictByY: true,
		YTolerance:  DefaultYTolerance,
	}
}

// Expander runs layered explorations: the landings of one layer become
// the takeoffs of the next.
type Expander struct {
	explorer *Explorer
}

// NewExpander creates an Expander around an explorer.
func NewExpander(e *Explorer) *Expander {
	return &Expander{explorer: e}
}

// Expand sweeps the action space from the initial frontier, then from each
// successive frontier of admitted landings, for opts.MaxLayers layers.
// Records from all layers are returned in execution order.
func (x *Expander) Expand(ctx context.Context, initial []Position, charges []int, directions []jump.Direction, opts Options) ([]Record, error) {
	if opts.MaxLayers <= 0 {
		opts.MaxLayers = DefaultMaxLayers
	}

	visited := make(map[Position]struct{}, len(initial))
	frontier := make([]Position, 0, len(initial))
	for _, pos := range initial {
		if _, seen := visited[pos]; seen && !opts.RevisitPositions {
			continue
		}
		visited[pos] = struct{}{}
		frontier = append(frontier, pos)
	}

	var all []Record
	for layer := 0; layer < opts.MaxLayers; layer++ {
		start := time.Now()
		observability.Experiment().OnLayerStart(ctx, layer, len(frontier))

		records, err := x.explorer.Explore(ctx, frontier, charges, directions)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)

		frontier = x.nextFrontier(records, visited, opts)
		observability.Experiment().OnLayerComplete(ctx, layer, len(records), len(frontier), time.Since(start))
	}
	return all, nil
}

// nextFrontier collects the admitted, not-yet-visited landing positions of
// a layer, in record order without duplicates.
func (x *Expander) nextFrontier(records []Record, visited map[Position]struct{}, opts Options) []Position {
	var next []Position
	for _, rec := range records {
		if opts.RestrictByY && math.Abs(rec.YOut-rec.YIn) <= opts.YTolerance {
			continue
		}
		pos := rec.To()
		if _, seen := visited[pos]; seen && !opts.RevisitPositions {
			continue
		}
		visited[pos] = struct{}{}
		next = append(next, pos)
	}
	return next
}
