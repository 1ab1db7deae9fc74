package nodelink

import (
	"strings"
	"testing"

	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/reach"
)

func buildTestGraph() *reach.Graph {
	return reach.Build([]explore.Record{
		{XIn: 230, YIn: 298, Charge: 5, Direction: jump.DirectionRight, XOut: 300, YOut: 100},
		{XIn: 230, YIn: 298, Charge: 60, Direction: jump.DirectionRight, XOut: 300, YOut: 100},
	})
}

func TestToDOTPinsPositions(t *testing.T) {
	dot := ToDOT(buildTestGraph(), Options{})

	if !strings.Contains(dot, "digraph reachability {") {
		t.Error("missing digraph header")
	}
	// y=100 is tier 0, y=298 tier 1 at spacing 200; display y is negated.
	if !strings.Contains(dot, `pos="230,-200!"`) {
		t.Errorf("takeoff node not pinned to its tier position:\n%s", dot)
	}
	if !strings.Contains(dot, `pos="300,0!"`) {
		t.Errorf("landing node not pinned to its tier position:\n%s", dot)
	}
}

func TestToDOTKeepsParallelEdges(t *testing.T) {
	dot := ToDOT(buildTestGraph(), Options{})

	from := reach.NodeID(0, 230, 298)
	to := reach.NodeID(0, 300, 100)
	arrow := `"` + from + `" -> "` + to + `"`
	if got := strings.Count(dot, arrow); got != 2 {
		t.Errorf("got %d edge statements between the pair, want 2:\n%s", got, dot)
	}

	// Stroke width follows charge: 5/20 floors at 0.5, 60/20 = 3.
	if !strings.Contains(dot, "penwidth=0.5") || !strings.Contains(dot, "penwidth=3") {
		t.Errorf("edge widths missing:\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	dot := ToDOT(buildTestGraph(), Options{Detailed: true})

	if !strings.Contains(dot, `label="right/5"`) {
		t.Errorf("missing detailed edge label:\n%s", dot)
	}
	if !strings.Contains(dot, `label="right/60"`) {
		t.Errorf("missing detailed edge label:\n%s", dot)
	}
}
