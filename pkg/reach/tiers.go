package reach

import "slices"

// DefaultTierTolerance is the maximum y-distance, in pixels, between
// neighbouring values merged into one display tier.
const DefaultTierTolerance = 5.0

// YTierMap assigns each distinct node y-coordinate to a display tier.
// Tiers exist only to line up near-identical platform heights in the
// rendered graph; they never affect connectivity.
type YTierMap map[float64]int

// BuildYTiers clusters y values into tiers by greedy chained merging:
// values are sorted ascending and each joins the open tier when it is
// within tolerance of the tier's most recently added value, otherwise it
// opens the next tier. The chaining means a tier can span more than one
// tolerance overall as long as consecutive gaps stay small.
func BuildYTiers(ys []float64, tolerance float64) YTierMap {
	sorted := slices.Clone(ys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	tiers := make(YTierMap, len(sorted))
	tier := 0
	for i, y := range sorted {
		if i > 0 && y-sorted[i-1] > tolerance {
			tier++
		}
		tiers[y] = tier
	}
	return tiers
}

// Tiers clusters the graph's node y-coordinates.
func (g *Graph) Tiers(tolerance float64) YTierMap {
	ys := make([]float64, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ys = append(ys, n.Y)
	}
	return BuildYTiers(ys, tolerance)
}
