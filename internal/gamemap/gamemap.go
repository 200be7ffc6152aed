package gamemap

import "mazegen/internal/geometry"

// GameMap is a raster of an arena: Width x Height cells of Cell arena
// units each, with cell (0, 0) anchored at Origin.
type GameMap struct {
	Width, Height int
	Cell          int
	Origin        geometry.Point
	Tiles         [][]Tile
}

// New creates an open GameMap with unit cells at the origin.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeFloor()
		}
	}
	return &GameMap{Width: width, Height: height, Cell: 1, Tiles: tiles}
}

// Rasterize covers boundary with cells of the given size and marks every
// cell that overlaps a wall. Cells and walls are treated as half-open
// intervals, so a zero-length wall piece marks nothing.
func Rasterize(boundary geometry.Region, walls []geometry.Wall, cell int) *GameMap {
	if cell <= 0 {
		cell = 1
	}
	m := New(ceilDiv(boundary.Width(), cell), ceilDiv(boundary.Height(), cell))
	m.Cell = cell
	m.Origin = boundary.Corners[geometry.TopLeft]

	for _, w := range walls {
		tl := w.Corners[geometry.TopLeft]
		br := w.Corners[geometry.BottomRight]
		if tl.X >= br.X || tl.Y >= br.Y {
			continue
		}
		// Cell x overlaps [tl.X, br.X) when Origin.X + x*cell < br.X and
		// Origin.X + (x+1)*cell > tl.X.
		x1 := floorDiv(tl.X-m.Origin.X, cell)
		x2 := ceilDiv(br.X-m.Origin.X, cell) - 1
		y1 := floorDiv(tl.Y-m.Origin.Y, cell)
		y2 := ceilDiv(br.Y-m.Origin.Y, cell) - 1
		for y := max(y1, 0); y <= min(y2, m.Height-1); y++ {
			for x := max(x1, 0); x <= min(x2, m.Width-1); x++ {
				m.Set(x, y, MakeWall())
			}
		}
	}
	return m
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// CellAt returns the cell containing arena point p.
func (m *GameMap) CellAt(p geometry.Point) (int, int) {
	return floorDiv(p.X-m.Origin.X, m.Cell), floorDiv(p.Y-m.Origin.Y, m.Cell)
}

// WallCount returns the number of wall cells.
func (m *GameMap) WallCount() int {
	n := 0
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x].Kind == TileWall {
				n++
			}
		}
	}
	return n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
