// Package nodelink renders the reachability graph as a node-link diagram.
//
// Nodes are pinned at their layout positions so the picture mirrors the
// game's geometry: real x on the horizontal axis, y-tier spacing on the
// vertical. Parallel edges stay visible through distinct stroke widths and
// labels.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lgoulart/jumpmap/pkg/reach"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the charge and direction on edge labels. When
	// false edges are drawn bare.
	Detailed bool

	// TierTolerance and VerticalSpacing are passed through to the layout;
	// zero selects the defaults.
	TierTolerance   float64
	VerticalSpacing float64
}

// ToDOT converts a reachability graph to Graphviz DOT format. Node
// positions are pinned, so the output is meant for the neato engine; the
// resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *reach.Graph, opts Options) string {
	layout := g.ComputeLayout(opts.TierTolerance, opts.VerticalSpacing)

	var buf bytes.Buffer
	buf.WriteString("digraph reachability {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, fixedsize=true, width=0.9];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("  splines=curved;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		p := layout.Positions[n.ID]
		// Graphviz points grow upward while screen pixels grow downward,
		// so the display y is negated to keep high platforms on top.
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%g,%g!\"];\n",
			n.ID, fmt.Sprintf("(%g, %g)", n.X, n.Y), p.X, -p.Y)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := fmtEdgeAttrs(e, opts.Detailed)
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtEdgeAttrs(e reach.Edge, detailed bool) []string {
	style := e.Style()
	attrs := []string{fmt.Sprintf("penwidth=%g", style.Width)}
	if e.Key > 0 {
		// Parallel edges share endpoints; a growing label distance keeps
		// their labels from stacking.
		attrs = append(attrs, fmt.Sprintf("labeldistance=%g", 1.0+style.Curvature))
	}
	if detailed {
		attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%s/%d", e.Direction, e.Charge)))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
