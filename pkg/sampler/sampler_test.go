package sampler

import (
	"slices"
	"testing"

	"github.com/lgoulart/jumpmap/pkg/errors"
)

func TestSampleWidePlatform(t *testing.T) {
	points, err := Sample(Span{XStart: 352, Width: 128}, 10)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	if len(points) != 10 {
		t.Fatalf("expected 10 samples, got %d: %v", len(points), points)
	}
	if points[0] != 352 {
		t.Errorf("first sample = %d, want left edge 352", points[0])
	}
	if points[len(points)-1] != 480 {
		t.Errorf("last sample = %d, want right edge 480", points[len(points)-1])
	}
	if !slices.IsSorted(points) {
		t.Errorf("samples not ascending: %v", points)
	}
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			t.Errorf("duplicate sample %d at index %d", points[i], i)
		}
	}
}

func TestSampleNarrowPlatformExhaustive(t *testing.T) {
	points, err := Sample(Span{XStart: 100, Width: 6}, 10)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	want := []int{100, 101, 102, 103, 104, 105, 106}
	if !slices.Equal(points, want) {
		t.Errorf("Sample() = %v, want %v", points, want)
	}
}

func TestSampleWidthEqualsCount(t *testing.T) {
	// Width == count takes the interval path, not the exhaustive one.
	points, err := Sample(Span{XStart: 0, Width: 10}, 10)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	if len(points) > 10 {
		t.Fatalf("expected at most 10 samples, got %d: %v", len(points), points)
	}
	if points[0] != 0 || points[len(points)-1] != 10 {
		t.Errorf("samples %v do not cover both edges", points)
	}
}

func TestSampleDeduplicatesRoundedNeighbors(t *testing.T) {
	// Width barely above count forces fractional steps that round onto
	// the same integer.
	points, err := Sample(Span{XStart: 0, Width: 11}, 10)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			t.Fatalf("samples not strictly ascending: %v", points)
		}
	}
	if points[0] != 0 || points[len(points)-1] != 11 {
		t.Errorf("samples %v do not cover both edges", points)
	}
}

func TestSampleInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		count int
	}{
		{"negative width", Span{XStart: 10, Width: -1}, 10},
		{"count below two", Span{XStart: 10, Width: 50}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample(tt.span, tt.count)
			if !errors.Is(err, errors.ErrCodeInvalidSpan) {
				t.Errorf("Sample() error = %v, want code %s", err, errors.ErrCodeInvalidSpan)
			}
		})
	}
}

func TestTakeoffY(t *testing.T) {
	if got := TakeoffY(329); got != 298 {
		t.Errorf("TakeoffY(329) = %v, want 298", got)
	}
}
