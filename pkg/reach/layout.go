package reach

// Layout defaults matching the reference renderings.
const (
	DefaultVerticalSpacing = 200.0

	baseCurvature = 0.15
	curvatureStep = 0.15

	minEdgeWidth   = 0.5
	chargePerWidth = 20.0
)

// Point is a display position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EdgeStyle is the visual treatment of one edge.
type EdgeStyle struct {
	// Curvature is the arc bend in radians. Parallel edges get
	// progressively larger bends so they stay visually distinct.
	Curvature float64 `json:"curvature"`

	// Width is the stroke width, monotonic in charge so stronger jumps
	// read as heavier strokes.
	Width float64 `json:"width"`
}

// Layout is the display projection of a graph: node positions plus the
// tier map they were derived from.
type Layout struct {
	Positions map[string]Point `json:"positions"`
	Tiers     YTierMap         `json:"tiers"`
}

// ComputeLayout places every node at its real x and its tier's display y.
// Zero tolerance or spacing select the defaults.
func (g *Graph) ComputeLayout(tierTolerance, verticalSpacing float64) *Layout {
	if tierTolerance <= 0 {
		tierTolerance = DefaultTierTolerance
	}
	if verticalSpacing <= 0 {
		verticalSpacing = DefaultVerticalSpacing
	}

	tiers := g.Tiers(tierTolerance)
	positions := make(map[string]Point, len(g.Nodes))
	for _, n := range g.Nodes {
		positions[n.ID] = Point{X: n.X, Y: float64(tiers[n.Y]) * verticalSpacing}
	}
	return &Layout{Positions: positions, Tiers: tiers}
}

// Style returns the visual treatment of an edge.
func (e Edge) Style() EdgeStyle {
	width := float64(e.Charge) / chargePerWidth
	if width < minEdgeWidth {
		width = minEdgeWidth
	}
	return EdgeStyle{
		Curvature: baseCurvature + float64(e.Key)*curvatureStep,
		Width:     width,
	}
}
