// Package pkg provides the core libraries for jumpmap reachability mapping.
//
// # Overview
//
// Jumpmap drives an instrumented 2D platformer as a black-box oracle and
// maps which landing positions are reachable from a given takeoff. The pkg
// directory is organized into four main areas:
//
//  1. Experiment core ([oracle], [jump], [sampler], [explore]) - running
//     jump experiments and sweeping the action space
//  2. Graph ([reach], [render/nodelink], [io]) - reachability multigraph,
//     rendering, and record interchange
//  3. Infrastructure ([cache], [store], [errors], [observability],
//     [buildinfo]) - caching, run archival, structured errors, hooks
//  4. Orchestration ([pipeline]) - sweep → graph → render with per-stage
//     caching, shared by CLI and API
//
// # Architecture
//
// The typical data flow through jumpmap:
//
//	Instrumented game (WebSocket oracle)
//	         ↓
//	    [jump] package (execute one charge-and-release experiment)
//	         ↓
//	    [explore] package (action-space sweep + frontier expansion)
//	         ↓
//	    [reach] package (multigraph + y-tier layout)
//	         ↓
//	    DOT/SVG/PNG/JSON output
//
// # Quick Start
//
// Sweep a platform and render the reachability graph:
//
//	import (
//	    "context"
//	    "github.com/lgoulart/jumpmap/pkg/explore"
//	    "github.com/lgoulart/jumpmap/pkg/pipeline"
//	    "github.com/lgoulart/jumpmap/pkg/oracle"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Takeoffs: []explore.Position{{Level: 0, X: 230, Y: 298}},
//	    Oracle:   oracle.NewScript(),
//	    Formats:  []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// [oracle] - The oracle boundary: command set, state reads, the scripted
// in-process fake, and the WebSocket adapter to a running game.
//
// [jump] - Single-experiment execution: charge phase, flight phase,
// landing-convergence detection, and determinism verification.
//
// [sampler] - Platform takeoff-point sampling (exhaustive for narrow
// spans, evenly spaced otherwise).
//
// [explore] - The Explorer sweeps every (takeoff, charge, direction)
// combination; the Expander repeats the sweep over frontier layers.
//
// [reach] - Reachability multigraph with parallel edges preserved,
// y-tier clustering, and display layout.
//
// [render/nodelink] - DOT generation and Graphviz SVG/PNG rendering.
//
// [io] - JSON import/export of flat record lists.
//
// [cache] - Content-addressed cache with file, Redis, and null backends
// plus domain key derivation per pipeline stage.
//
// [store] - Run archive with file and MongoDB backends.
//
// [pipeline] - Orchestrates sweep → graph → render with per-stage
// caching. Used by both the CLI and the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/explore/...  # Specific package
//
// The experiment packages test against the scripted oracle, so no game
// process is needed.
//
// [oracle]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/oracle
// [jump]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/jump
// [sampler]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/sampler
// [explore]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/explore
// [reach]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/reach
// [render/nodelink]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/io
// [cache]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/cache
// [store]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/store
// [errors]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/buildinfo
// [pipeline]: https://pkg.go.dev/github.com/lgoulart/jumpmap/pkg/pipeline
package pkg
