// Package reach builds the reachability multigraph from jump records.
//
// Nodes are positions, deduplicated by exact coordinate equality. Edges
// are jumps; the graph is a multigraph, so two different actions connecting
// the same pair of positions stay two distinct edges, each keyed by a
// parallel index. Everything beyond connectivity (tiers, display
// positions, edge styling) is a rendering concern and lives in the layout
// helpers.
package reach

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lgoulart/jumpmap/pkg/errors"
	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
)

// Node is a deduplicated landing or takeoff position.
type Node struct {
	ID    string  `json:"id" bson:"id"`
	Level int     `json:"level" bson:"level"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}

// Edge is one jump between two positions. Key disambiguates parallel
// edges: the k-th edge sharing (From, To) has Key k.
type Edge struct {
	From      string         `json:"from" bson:"from"`
	To        string         `json:"to" bson:"to"`
	Key       int            `json:"key" bson:"key"`
	Direction jump.Direction `json:"direction" bson:"direction"`
	Charge    int            `json:"charge" bson:"charge"`
	Record    explore.Record `json:"record" bson:"record"`
}

// Graph is the reachability multigraph. Nodes and Edges preserve
// insertion order, which follows record order.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`

	byID     map[string]int
	parallel map[[2]string]int
}

// NodeID formats the canonical node identifier for a position.
func NodeID(level int, x, y float64) string {
	return fmt.Sprintf("L%d:%g,%g", level, x, y)
}

// BuildOption configures graph construction.
type BuildOption func(*builder)

// WithLogger sets the logger used to report skipped records.
func WithLogger(l *log.Logger) BuildOption {
	return func(b *builder) { b.logger = l }
}

type builder struct {
	logger *log.Logger
}

// Build constructs the multigraph from a flat record list. Records with a
// missing coordinate are logged and skipped; they cannot place a node, but
// one bad imported row should not discard a whole mapping run.
func Build(records []explore.Record, opts ...BuildOption) *Graph {
	b := builder{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&b)
	}

	g := &Graph{
		byID:     make(map[string]int),
		parallel: make(map[[2]string]int),
	}
	for i, rec := range records {
		if !rec.Complete() {
			b.logger.Warn("skipping incomplete record",
				"index", i, "code", errors.ErrCodeIncompleteRecord)
			continue
		}
		from := g.addNode(rec.LevelIn, rec.XIn, rec.YIn)
		to := g.addNode(rec.LevelOut, rec.XOut, rec.YOut)
		g.addEdge(from, to, rec)
	}
	return g
}

// addNode returns the ID of the node for the position, inserting it if
// unseen.
func (g *Graph) addNode(level int, x, y float64) string {
	id := NodeID(level, x, y)
	if _, ok := g.byID[id]; !ok {
		g.byID[id] = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{ID: id, Level: level, X: x, Y: y})
	}
	return id
}

func (g *Graph) addEdge(from, to string, rec explore.Record) {
	pair := [2]string{from, to}
	key := g.parallel[pair]
	g.parallel[pair]++
	g.Edges = append(g.Edges, Edge{
		From:      from,
		To:        to,
		Key:       key,
		Direction: rec.Direction,
		Charge:    rec.Charge,
		Record:    rec,
	})
}

// Node returns the node with the given ID. The lookup index survives
// serialization round trips by falling back to a scan.
func (g *Graph) Node(id string) (Node, bool) {
	if g.byID != nil {
		idx, ok := g.byID[id]
		if !ok {
			return Node{}, false
		}
		return g.Nodes[idx], true
	}
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// EdgesBetween returns all parallel edges from one node to another, in
// key order.
func (g *Graph) EdgesBetween(from, to string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			out = append(out, e)
		}
	}
	return out
}
