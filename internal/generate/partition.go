package generate

import (
	"math/rand"

	"mazegen/internal/geometry"
)

// Partition recursively divides r with a divider of orientation o,
// alternating orientation at each level, and returns the finished wall
// pieces. Children are processed before their parent's divider is cut, so
// the innermost pieces come first.
func Partition(r geometry.Region, o geometry.Orientation, width int, rng *rand.Rand) []geometry.Wall {
	p := partitioner{width: width, rng: rng}
	return p.partition(r, o)
}

// partitioner carries the per-run parameters through the recursion.
type partitioner struct {
	width  int
	rng    *rand.Rand
	onLeaf func(geometry.Region) // optional; called for every undivided region
}

func (p *partitioner) leaf(r geometry.Region) []geometry.Wall {
	if p.onLeaf != nil {
		p.onLeaf(r)
	}
	return nil
}

func (p *partitioner) partition(r geometry.Region, o geometry.Orientation) []geometry.Wall {
	w := p.width
	if r.Width() <= roomFactor*w || r.Height() <= roomFactor*w {
		return p.leaf(r)
	}
	length := r.Extent(o)
	// Implied by the room check today, but the two factors are tuned separately.
	if length <= cutFactor*w {
		return p.leaf(r)
	}

	divide := drawOffset(p.rng, length, w)
	divider, first, second := split(r, o, divide, w)

	walls := p.partition(first, o.Flip())
	walls = append(walls, p.partition(second, o.Flip())...)
	return append(walls, Cut(divider, w, p.rng)...)
}

// split places a divider of thickness 2*width centered at offset from the
// region's top-left corner and returns it with the two regions on either
// side. The divider spans the region's full extent along its own direction.
func split(r geometry.Region, o geometry.Orientation, offset, width int) (geometry.Wall, geometry.Region, geometry.Region) {
	tl := r.Corners[geometry.TopLeft]
	br := r.Corners[geometry.BottomRight]

	if o == geometry.Vertical {
		x := tl.X + offset
		divider := geometry.Rect(x-width, tl.Y, x+width, br.Y)
		return geometry.Wall{Corners: divider.Corners, Orientation: o},
			geometry.Rect(tl.X, tl.Y, x-width, br.Y),
			geometry.Rect(x+width, tl.Y, br.X, br.Y)
	}

	y := tl.Y + offset
	divider := geometry.Rect(tl.X, y-width, br.X, y+width)
	return geometry.Wall{Corners: divider.Corners, Orientation: o},
		geometry.Rect(tl.X, tl.Y, br.X, y-width),
		geometry.Rect(tl.X, y+width, br.X, br.Y)
}
