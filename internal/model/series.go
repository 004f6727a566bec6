package model

import "fmt"

// SeriesPair holds the X and Y values parsed from one upload.
// The two slices always have the same length.
type SeriesPair struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// NewSeriesPair creates an empty pair with room for n points.
func NewSeriesPair(n int) *SeriesPair {
	return &SeriesPair{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
	}
}

// Add appends one point.
func (s *SeriesPair) Add(x, y float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Len returns the number of points.
func (s *SeriesPair) Len() int {
	if s == nil {
		return 0
	}
	return len(s.X)
}

// Empty reports whether the pair has no points.
func (s *SeriesPair) Empty() bool {
	return s.Len() == 0
}

// Validate checks the equal-length invariant.
func (s *SeriesPair) Validate() error {
	if s == nil {
		return fmt.Errorf("series is nil")
	}
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series length mismatch: %d x values, %d y values", len(s.X), len(s.Y))
	}
	return nil
}

// Bounds returns the min and max of each axis. ok is false for an empty pair.
func (s *SeriesPair) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	if s.Empty() {
		return 0, 0, 0, 0, false
	}
	minX, maxX = s.X[0], s.X[0]
	minY, maxY = s.Y[0], s.Y[0]
	for i := 1; i < len(s.X); i++ {
		minX = min(minX, s.X[i])
		maxX = max(maxX, s.X[i])
		minY = min(minY, s.Y[i])
		maxY = max(maxY, s.Y[i])
	}
	return minX, maxX, minY, maxY, true
}
