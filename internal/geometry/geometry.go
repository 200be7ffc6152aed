package geometry

import (
	"errors"
	"fmt"
)

// Point is an integer position in arena coordinates.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Corner indexes into a Quad. Corners run clockwise starting at the
// top-left (minimum x, minimum y) corner.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Quad holds the four corners of an axis-aligned rectangle in
// TopLeft, TopRight, BottomRight, BottomLeft order.
type Quad [4]Point

// Width is the horizontal extent measured along the top edge.
func (q Quad) Width() int {
	return abs(q[TopRight].X - q[TopLeft].X)
}

// Height is the vertical extent measured along the left edge.
func (q Quad) Height() int {
	return abs(q[BottomLeft].Y - q[TopLeft].Y)
}

// Contains reports whether p lies inside q, edges included.
func (q Quad) Contains(p Point) bool {
	return p.X >= q[TopLeft].X && p.X <= q[TopRight].X &&
		p.Y >= q[TopLeft].Y && p.Y <= q[BottomLeft].Y
}

// Region is a rectangular sub-area of the arena.
type Region struct {
	Corners Quad
}

// NewRegion builds a region from its four corners in clockwise order.
func NewRegion(tl, tr, br, bl Point) Region {
	return Region{Corners: Quad{tl, tr, br, bl}}
}

// Rect builds a region from its bounding coordinates.
func Rect(minX, minY, maxX, maxY int) Region {
	return NewRegion(Pt(minX, minY), Pt(maxX, minY), Pt(maxX, maxY), Pt(minX, maxY))
}

// Width returns the horizontal extent of the region.
func (r Region) Width() int { return r.Corners.Width() }

// Height returns the vertical extent of the region.
func (r Region) Height() int { return r.Corners.Height() }

// Extent returns the region's size along the axis a divider of
// orientation o is positioned on: a vertical divider is placed somewhere
// along the horizontal extent, a horizontal one along the vertical extent.
func (r Region) Extent(o Orientation) int {
	if o == Vertical {
		return r.Width()
	}
	return r.Height()
}

// Contains reports whether p lies inside the region, edges included.
func (r Region) Contains(p Point) bool { return r.Corners.Contains(p) }

// ErrDegenerate is returned by Validate for regions that do not describe
// a non-empty axis-aligned rectangle in clockwise corner order.
var ErrDegenerate = errors.New("degenerate region")

// Validate checks the corner convention and that the region has area.
func (r Region) Validate() error {
	c := r.Corners
	switch {
	case c[TopLeft].Y != c[TopRight].Y, c[BottomLeft].Y != c[BottomRight].Y,
		c[TopLeft].X != c[BottomLeft].X, c[TopRight].X != c[BottomRight].X:
		return fmt.Errorf("%w: corners %v are not axis-aligned", ErrDegenerate, c)
	case c[TopLeft].X >= c[TopRight].X:
		return fmt.Errorf("%w: top-left x %d must be less than top-right x %d",
			ErrDegenerate, c[TopLeft].X, c[TopRight].X)
	case c[TopLeft].Y >= c[BottomLeft].Y:
		return fmt.Errorf("%w: top-left y %d must be less than bottom-left y %d",
			ErrDegenerate, c[TopLeft].Y, c[BottomLeft].Y)
	}
	return nil
}

func (r Region) String() string {
	c := r.Corners
	return fmt.Sprintf("[%d,%d → %d,%d]", c[TopLeft].X, c[TopLeft].Y, c[BottomRight].X, c[BottomRight].Y)
}

// Wall is a thin rectangular obstacle tagged with the orientation of the
// divider it was cut from.
type Wall struct {
	Corners     Quad
	Orientation Orientation
}

// Length is the wall's extent along the direction it runs.
func (w Wall) Length() int {
	if w.Orientation == Vertical {
		return w.Corners.Height()
	}
	return w.Corners.Width()
}

// Thickness is the wall's extent across the direction it runs.
func (w Wall) Thickness() int {
	if w.Orientation == Vertical {
		return w.Corners.Width()
	}
	return w.Corners.Height()
}

// Contains reports whether p lies inside the wall, edges included.
func (w Wall) Contains(p Point) bool { return w.Corners.Contains(p) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
