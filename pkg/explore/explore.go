// Package explore sweeps the discrete action space of the simulation.
//
// The [Explorer] runs one jump experiment for every combination of takeoff
// position, charge duration, and direction, producing a flat list of
// [Record] values. The [Expander] layers explorations: each layer's landing
// positions seed the next layer's takeoffs, breadth-first, up to a fixed
// depth.
package explore

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/observability"
)

// Position is a takeoff point: a level plus pixel coordinates within it.
type Position struct {
	Level int     `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Positions builds the takeoff set for a single platform: every sampled x
// at the platform's takeoff y.
func Positions(level int, y float64, xs []int) []Position {
	out := make([]Position, 0, len(xs))
	for _, x := range xs {
		out = append(out, Position{Level: level, X: float64(x), Y: y})
	}
	return out
}

// Record is one observed jump: the takeoff, the action, and where the
// character came to rest. It is the flat interchange tuple persisted by
// exports and consumed by the graph builder.
type Record struct {
	LevelIn   int            `json:"level_in"`
	XIn       float64        `json:"x_in"`
	YIn       float64        `json:"y_in"`
	Charge    int            `json:"charge"`
	Direction jump.Direction `json:"direction"`
	LevelOut  int            `json:"level_out"`
	XOut      float64        `json:"x_out"`
	YOut      float64        `json:"y_out"`
}

// Complete reports whether every coordinate is present. Records imported
// from external files can carry missing fields, which decode as NaN.
func (r Record) Complete() bool {
	for _, v := range []float64{r.XIn, r.YIn, r.XOut, r.YOut} {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// From returns the takeoff position of the record.
func (r Record) From() Position {
	return Position{Level: r.LevelIn, X: r.XIn, Y: r.YIn}
}

// To returns the landing position of the record.
func (r Record) To() Position {
	return Position{Level: r.LevelOut, X: r.XOut, Y: r.YOut}
}

// Explorer runs exhaustive action-space sweeps against a single oracle.
// Experiments run strictly sequentially; the executor reconfigures the
// oracle before each one, so no state leaks between experiments.
type Explorer struct {
	exec      *jump.Executor
	windPhase float64
	logger    *log.Logger
}

// ExplorerOption configures an Explorer.
type ExplorerOption func(*Explorer)

// WithWindPhase sets the wind phase passed to every experiment.
func WithWindPhase(phase float64) ExplorerOption {
	return func(e *Explorer) { e.windPhase = phase }
}

// WithLogger sets the logger for per-experiment progress output.
func WithLogger(l *log.Logger) ExplorerOption {
	return func(e *Explorer) { e.logger = l }
}

// NewExplorer creates an Explorer around a jump executor.
func NewExplorer(exec *jump.Executor, opts ...ExplorerOption) *Explorer {
	e := &Explorer{
		exec:   exec,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Explore runs one experiment per (position, charge, direction) and
// returns a record for each, in enumeration order. The sweep is total:
// len(result) == len(positions) * len(charges) * len(directions).
// Experiments that hit the flight cap are kept (their landing coordinates
// are the last observed state) and logged at warn level.
func (e *Explorer) Explore(ctx context.Context, positions []Position, charges []int, directions []jump.Direction) ([]Record, error) {
	total := len(positions) * len(charges) * len(directions)
	records := make([]Record, 0, total)

	start := time.Now()
	observability.Experiment().OnSweepStart(ctx, total)

	for _, pos := range positions {
		cfg := jump.Config{Level: pos.Level, X: pos.X, Y: pos.Y, WindPhase: e.windPhase}
		for _, charge := range charges {
			for _, dir := range directions {
				outcome, err := e.exec.Execute(ctx, cfg, jump.Action{Direction: dir, ChargeFrames: charge})
				if err != nil {
					observability.Experiment().OnSweepComplete(ctx, len(records), time.Since(start), err)
					return nil, err
				}
				if !outcome.Converged {
					e.logger.Warn("experiment did not settle",
						"x", pos.X, "y", pos.Y, "charge", charge, "direction", dir)
				}
				records = append(records, Record{
					LevelIn:   pos.Level,
					XIn:       pos.X,
					YIn:       pos.Y,
					Charge:    charge,
					Direction: dir,
					LevelOut:  outcome.Level,
					XOut:      outcome.X,
					YOut:      outcome.Y,
				})
				e.logger.Debug("experiment complete",
					"n", len(records), "total", total,
					"x", pos.X, "y", pos.Y, "charge", charge, "direction", dir,
					"x_out", outcome.X, "y_out", outcome.Y)
			}
		}
	}

	observability.Experiment().OnSweepComplete(ctx, len(records), time.Since(start), nil)
	return records, nil
}
