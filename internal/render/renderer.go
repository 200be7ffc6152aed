package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mazegen/internal/gamemap"
	"mazegen/internal/geometry"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 2

// Renderer draws a rasterized layout onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-hudRows, 1)),
		theme:  theme,
	}
}

// Resize picks up a new screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// CellSize returns the smallest cell size, in arena units, at which the
// whole boundary fits in the map area of the screen.
func (r *Renderer) CellSize(boundary geometry.Region) int {
	cols := max(r.camera.ViewWidth/2, 1)
	rows := max(r.camera.ViewHeight, 1)
	cell := max(ceilDiv(boundary.Width(), cols), ceilDiv(boundary.Height(), rows))
	return max(cell, 1)
}

// DrawMap clears the screen and draws every cell of gmap centered in
// the view.
func (r *Renderer) DrawMap(gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.camera.Fit(gmap.Width, gmap.Height)

	wallStyle := tcell.StyleDefault.Foreground(r.theme.WallColor).Background(tcell.ColorBlack)
	floorStyle := tcell.StyleDefault.Foreground(r.theme.FloorColor).Background(tcell.ColorBlack)

	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			if gmap.At(x, y).Kind == gamemap.TileWall {
				r.putGlyph(sx, sy, r.theme.Wall, wallStyle)
			} else {
				r.putGlyph(sx, sy, r.theme.Floor, floorStyle)
			}
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) across the two
// columns of a cell at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, mainc, combc, style)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
