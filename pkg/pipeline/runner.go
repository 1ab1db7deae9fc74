package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgoulart/jumpmap/pkg/cache"
	"github.com/lgoulart/jumpmap/pkg/explore"
	recio "github.com/lgoulart/jumpmap/pkg/io"
	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/observability"
	"github.com/lgoulart/jumpmap/pkg/reach"
	"github.com/lgoulart/jumpmap/pkg/render/nodelink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. The oracle travels in Options because sweeps
// against a single oracle are strictly sequential.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete sweep → graph → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Sweep
	sweepStart := time.Now()
	records, sweepHit, err := r.SweepWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	result.Records = records
	result.Stats.SweepTime = time.Since(sweepStart)
	result.Stats.RecordCount = len(records)
	result.CacheInfo.SweepHit = sweepHit

	if data, err := json.Marshal(records); err == nil {
		result.RecordsHash = cache.Hash(data)
	}

	r.Logger.Info("swept action space",
		"records", len(records),
		"cached", sweepHit,
		"duration", result.Stats.SweepTime)

	// Stage 2: Graph (pure projection, never cached)
	graphStart := time.Now()
	g := reach.Build(records, reach.WithLogger(opts.Logger))
	result.Graph = g
	result.Stats.GraphTime = time.Since(graphStart)
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)

	r.Logger.Info("built reachability graph",
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", result.Stats.GraphTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, records, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SweepWithCacheInfo runs the layered sweep with caching and returns cache
// hit info.
func (r *Runner) SweepWithCacheInfo(ctx context.Context, opts Options) ([]explore.Record, bool, error) {
	if err := opts.ValidateForSweep(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	positionsData, _ := json.Marshal(opts.Takeoffs)
	cacheKey := r.Keyer.SweepKey(cache.Hash(positionsData), opts.SweepKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var records []explore.Record
			if err := json.Unmarshal(data, &records); err == nil {
				observability.Cache().OnCacheHit(ctx, "sweep")
				return records, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "sweep")
	}

	if opts.Oracle == nil {
		return nil, false, fmt.Errorf("oracle is required for an uncached sweep")
	}

	exec := jump.NewExecutor(opts.Oracle, jump.WithLogger(opts.Logger))
	explorer := explore.NewExplorer(exec,
		explore.WithWindPhase(opts.WindPhase),
		explore.WithLogger(opts.Logger))
	records, err := explore.NewExpander(explorer).Expand(ctx,
		opts.Takeoffs, opts.Charges, opts.Directions, opts.Expansion)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(records); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSweep)
		observability.Cache().OnCacheSet(ctx, "sweep", len(data))
	}

	return records, false, nil // Cache miss
}

// Sweep is a convenience wrapper that calls SweepWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Sweep(ctx context.Context, opts Options) ([]explore.Record, error) {
	records, _, err := r.SweepWithCacheInfo(ctx, opts)
	return records, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *reach.Graph, records []explore.Record, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	graphData, err := json.Marshal(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(graphData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := renderFormats(g, records, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *reach.Graph, records []explore.Record, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, records, opts)
	return artifacts, err
}

// renderFormats produces every requested artifact. DOT is rendered once
// and reused for the Graphviz formats.
func renderFormats(g *reach.Graph, records []explore.Record, opts Options) (map[string][]byte, error) {
	nlOpts := nodelink.Options{
		Detailed:        opts.Detailed,
		TierTolerance:   opts.TierTolerance,
		VerticalSpacing: opts.VerticalSpacing,
	}

	var dot string
	needsDOT := false
	for _, f := range opts.Formats {
		if f == FormatDOT || f == FormatSVG || f == FormatPNG {
			needsDOT = true
		}
	}
	if needsDOT {
		dot = nodelink.ToDOT(g, nlOpts)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			artifacts[format] = []byte(dot)
		case FormatSVG:
			data, err := nodelink.RenderSVG(dot)
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[format] = data
		case FormatPNG:
			data, err := nodelink.RenderPNG(dot)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = data
		case FormatJSON:
			var buf bytes.Buffer
			if err := recio.WriteJSON(records, &buf); err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = buf.Bytes()
		}
	}
	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
