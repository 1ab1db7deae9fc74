// Package sampler selects representative takeoff x-positions on a platform.
//
// Exploring every pixel of a wide platform wastes experiments on takeoffs
// that land in the same place; sampling a handful of evenly spaced points
// keeps the experiment count bounded while still covering both platform
// edges. Narrow platforms are sampled exhaustively instead, so no sample
// budget is wasted on duplicates.
package sampler

import (
	"slices"

	"github.com/lgoulart/jumpmap/pkg/errors"
)

// DefaultSampleCount is the number of takeoff points sampled on a wide
// platform.
const DefaultSampleCount = 10

// KingFeetOffset is the vertical adjustment, in pixels, between a
// platform's top edge and the character position that stands exactly on
// it.
const KingFeetOffset = 31

// Span is a platform's horizontal extent: the x of its left edge and its
// width in pixels.
type Span struct {
	XStart int
	Width  int
}

// TakeoffY converts a platform's top y-coordinate into the character
// y-coordinate that stands on the platform surface.
func TakeoffY(platformY float64) float64 {
	return platformY - KingFeetOffset
}

// Sample returns sorted, deduplicated takeoff x-positions for the span.
//
// When the span is narrower than count, every integer x in
// [XStart, XStart+Width] is returned (exhaustive coverage). Otherwise
// count points are chosen at equal intervals of Width/(count-1), each
// clamped to the right edge; rounding may make neighbors coincide, so the
// result is deduplicated and can be shorter than count. The first and
// last samples always sit on (or at the rounding neighbor of) the
// platform edges.
func Sample(span Span, count int) ([]int, error) {
	if span.Width < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpan, "platform width must be non-negative, got %d", span.Width)
	}
	if count < 2 {
		return nil, errors.New(errors.ErrCodeInvalidSpan, "sample count must be at least 2, got %d", count)
	}

	start := span.XStart
	end := span.XStart + span.Width

	if span.Width < count {
		points := make([]int, 0, span.Width+1)
		for x := start; x <= end; x++ {
			points = append(points, x)
		}
		return points, nil
	}

	step := float64(span.Width) / float64(count-1)
	points := make([]int, 0, count)
	for i := 0; i < count; i++ {
		x := start + int(float64(i)*step)
		if x > end {
			x = end
		}
		points = append(points, x)
	}

	slices.Sort(points)
	return slices.Compact(points), nil
}
