package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the summary shown under the map.
type Status struct {
	Seed       int64
	Width      int
	Cell       int
	Walls      int
	Rooms      int
	Components int
	Message    string
}

// DrawHUD renders the status line and key help at the bottom of the screen.
func (r *Renderer) DrawHUD(st Status) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows

	statusLine := fmt.Sprintf("seed %d  width %d  walls %d  rooms %d  areas %d  1 cell = %d units",
		st.Seed, st.Width, st.Walls, st.Rooms, st.Components, st.Cell)
	r.drawText(0, hudY, runewidth.Truncate(statusLine, screenW, "…"), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	help := "[r] regenerate  [s] save  [q] quit"
	if st.Message != "" {
		help = st.Message + "  " + help
	}
	r.drawText(0, hudY+1, runewidth.Truncate(help, screenW, "…"), tcell.StyleDefault.Foreground(tcell.ColorLightYellow))

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
