package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// BBox represents a bounding box as reported by the text extractor:
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right corner.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// NewBBox creates a bounding box from its four coordinates
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return math.Abs(b.X1 - b.X0)
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return math.Abs(b.Y1 - b.Y0)
}

// Union returns the smallest box containing both boxes.
// A zero box is treated as empty and does not widen the result.
func (b BBox) Union(other BBox) BBox {
	if b.IsZero() {
		return other
	}
	if other.IsZero() {
		return b
	}
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// IsZero returns true if all four coordinates are zero
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Array returns the coordinates in collaborator order
func (b BBox) Array() [4]float64 {
	return [4]float64{b.X0, b.Y0, b.X1, b.Y1}
}

// MarshalJSON encodes the box as [x0, y0, x1, y1]
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Array())
}

// UnmarshalJSON decodes a [x0, y0, x1, y1] array
func (b *BBox) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("decoding bbox: %w", err)
	}
	if len(coords) != 4 {
		return fmt.Errorf("decoding bbox: want 4 coordinates, got %d", len(coords))
	}
	*b = NewBBox(coords[0], coords[1], coords[2], coords[3])
	return nil
}

// MarshalYAML encodes the box as a four element sequence
func (b BBox) MarshalYAML() (interface{}, error) {
	return b.Array(), nil
}
