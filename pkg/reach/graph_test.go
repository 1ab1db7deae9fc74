package reach

import (
	"math"
	"testing"

	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
)

func rec(xIn, yIn float64, charge int, dir jump.Direction, xOut, yOut float64) explore.Record {
	return explore.Record{
		XIn: xIn, YIn: yIn,
		Charge: charge, Direction: dir,
		XOut: xOut, YOut: yOut,
	}
}

func TestBuildDeduplicatesNodes(t *testing.T) {
	g := Build([]explore.Record{
		rec(230, 298, 15, jump.DirectionRight, 300, 298),
		rec(230, 298, 30, jump.DirectionRight, 350, 200),
		rec(300, 298, 5, jump.DirectionLeft, 230, 298),
	})

	// Positions: (230,298), (300,298), (350,200). The takeoff of the
	// third record and the landing of the first coincide.
	if len(g.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(g.Nodes))
	}
	if len(g.Edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(g.Edges))
	}

	if _, ok := g.Node(NodeID(0, 300, 298)); !ok {
		t.Error("shared position missing from graph")
	}
}

func TestBuildPreservesParallelEdges(t *testing.T) {
	// Two different actions connecting the same pair of positions must
	// stay two edges, not collapse into one.
	g := Build([]explore.Record{
		rec(230, 298, 15, jump.DirectionRight, 300, 298),
		rec(230, 298, 60, jump.DirectionRight, 300, 298),
	})

	if len(g.Edges) != 2 {
		t.Fatalf("got %d edges, want 2 parallel edges", len(g.Edges))
	}

	edges := g.EdgesBetween(NodeID(0, 230, 298), NodeID(0, 300, 298))
	if len(edges) != 2 {
		t.Fatalf("EdgesBetween returned %d edges, want 2", len(edges))
	}
	if edges[0].Key != 0 || edges[1].Key != 1 {
		t.Errorf("parallel keys = (%d, %d), want (0, 1)", edges[0].Key, edges[1].Key)
	}
	if edges[0].Charge != 15 || edges[1].Charge != 60 {
		t.Errorf("edge charges = (%d, %d), want (15, 60)", edges[0].Charge, edges[1].Charge)
	}
}

func TestBuildSkipsIncompleteRecords(t *testing.T) {
	incomplete := rec(230, 298, 15, jump.DirectionRight, math.NaN(), 298)

	g := Build([]explore.Record{
		incomplete,
		rec(230, 298, 30, jump.DirectionLeft, 180, 298),
	})

	if len(g.Edges) != 1 {
		t.Fatalf("got %d edges, want 1 (incomplete record skipped)", len(g.Edges))
	}
	if g.Edges[0].Charge != 30 {
		t.Errorf("surviving edge charge = %d, want 30", g.Edges[0].Charge)
	}
}

func TestBuildSelfLoop(t *testing.T) {
	// A zero-charge hop that lands where it started is a legitimate
	// record and becomes a self loop.
	g := Build([]explore.Record{
		rec(230, 298, 0, jump.DirectionRight, 230, 298),
	})

	if len(g.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(g.Nodes))
	}
	if len(g.Edges) != 1 || g.Edges[0].From != g.Edges[0].To {
		t.Fatalf("expected a single self loop, got %+v", g.Edges)
	}
}

func TestYTierChaining(t *testing.T) {
	tests := []struct {
		name      string
		ys        []float64
		tolerance float64
		want      map[float64]int
	}{
		{
			name:      "distinct platforms",
			ys:        []float64{298, 200, 100},
			tolerance: 5,
			want:      map[float64]int{100: 0, 200: 1, 298: 2},
		},
		{
			name:      "near heights merge",
			ys:        []float64{298, 296, 200},
			tolerance: 5,
			want:      map[float64]int{200: 0, 296: 1, 298: 1},
		},
		{
			name: "chained merging spans beyond one tolerance",
			// 100->104->108 each gap is 4, so all three share a tier even
			// though 100 and 108 are 8 apart.
			ys:        []float64{100, 104, 108},
			tolerance: 5,
			want:      map[float64]int{100: 0, 104: 0, 108: 0},
		},
		{
			name:      "duplicates collapse",
			ys:        []float64{298, 298, 298},
			tolerance: 5,
			want:      map[float64]int{298: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildYTiers(tt.ys, tt.tolerance)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tiers entries, want %d", len(got), len(tt.want))
			}
			for y, tier := range tt.want {
				if got[y] != tier {
					t.Errorf("tier[%v] = %d, want %d", y, got[y], tier)
				}
			}
		})
	}
}

func TestComputeLayout(t *testing.T) {
	g := Build([]explore.Record{
		rec(230, 298, 30, jump.DirectionRight, 350, 100),
	})

	layout := g.ComputeLayout(5, 200)

	from := layout.Positions[NodeID(0, 230, 298)]
	to := layout.Positions[NodeID(0, 350, 100)]

	if from.X != 230 || to.X != 350 {
		t.Errorf("x positions (%v, %v), want real x preserved (230, 350)", from.X, to.X)
	}
	// y=100 is tier 0, y=298 tier 1.
	if to.Y != 0 || from.Y != 200 {
		t.Errorf("display y = (%v, %v), want (200, 0)", from.Y, to.Y)
	}
}

func TestEdgeStyle(t *testing.T) {
	tests := []struct {
		name          string
		edge          Edge
		wantCurvature float64
		wantWidth     float64
	}{
		{"first parallel", Edge{Key: 0, Charge: 60}, 0.15, 3},
		{"second parallel", Edge{Key: 1, Charge: 60}, 0.30, 3},
		{"width floor", Edge{Key: 0, Charge: 5}, 0.15, 0.5},
		{"zero charge", Edge{Key: 0, Charge: 0}, 0.15, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.edge.Style()
			if math.Abs(got.Curvature-tt.wantCurvature) > 1e-9 {
				t.Errorf("curvature = %v, want %v", got.Curvature, tt.wantCurvature)
			}
			if got.Width != tt.wantWidth {
				t.Errorf("width = %v, want %v", got.Width, tt.wantWidth)
			}
		})
	}
}
