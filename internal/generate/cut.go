package generate

import (
	"math/rand"

	"mazegen/internal/geometry"
)

const (
	// roomFactor: regions whose width or height is at most roomFactor*width
	// are left as open rooms.
	roomFactor = 7
	// cutFactor: dividers at most cutFactor*width long are dropped instead of
	// being cut.
	cutFactor = 6
	// marginFactor keeps divide and hole points this many widths away from
	// either end of the extent they are drawn from.
	marginFactor = 2
	// gapFactor is the half-width of a gap in widths; gaps are
	// 2*gapFactor*width wide.
	gapFactor = 2
)

// drawOffset picks an offset uniformly from [2w, length-2w-1].
// The caller guarantees length > cutFactor*width.
func drawOffset(rng *rand.Rand, length, width int) int {
	lo := marginFactor * width
	hi := length - marginFactor*width - 1
	return lo + rng.Intn(hi-lo+1)
}

// Cut punches one gap into a dividing wall and returns the two pieces on
// either side of it. Walls no longer than cutFactor*width are dropped: Cut
// returns nil and the two regions the wall separated become one open area.
// Piece A may have zero length when the hole is drawn at its lowest offset.
func Cut(w geometry.Wall, width int, rng *rand.Rand) []geometry.Wall {
	length := w.Length()
	if length <= cutFactor*width {
		return nil
	}
	hole := drawOffset(rng, length, width)

	c := w.Corners
	tl, tr := c[geometry.TopLeft], c[geometry.TopRight]
	br, bl := c[geometry.BottomRight], c[geometry.BottomLeft]

	var a, b geometry.Quad
	if w.Orientation == geometry.Vertical {
		above := tl.Y + hole - gapFactor*width
		below := tl.Y + hole + gapFactor*width
		a = geometry.Quad{tl, tr, geometry.Pt(tr.X, above), geometry.Pt(tl.X, above)}
		b = geometry.Quad{geometry.Pt(tl.X, below), geometry.Pt(tr.X, below), br, bl}
	} else {
		left := tl.X + hole - gapFactor*width
		right := tl.X + hole + gapFactor*width
		a = geometry.Quad{tl, geometry.Pt(left, tl.Y), geometry.Pt(left, bl.Y), bl}
		b = geometry.Quad{geometry.Pt(right, tr.Y), tr, br, geometry.Pt(right, br.Y)}
	}
	return []geometry.Wall{
		{Corners: a, Orientation: w.Orientation},
		{Corners: b, Orientation: w.Orientation},
	}
}
