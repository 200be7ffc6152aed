package render

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the glyphs and colors used to draw a layout. Narrow glyphs
// are doubled to fill both columns of a cell.
type Theme struct {
	Wall       string
	Floor      string
	WallColor  tcell.Color
	FloorColor tcell.Color
}

// Themes maps theme names to their tile sets.
var Themes = map[string]Theme{
	"blocks": {
		Wall:       "█",
		Floor:      " ",
		WallColor:  tcell.ColorSilver,
		FloorColor: tcell.ColorDarkSlateGray,
	},
	"ascii": {
		Wall:       "#",
		Floor:      ".",
		WallColor:  tcell.ColorWhite,
		FloorColor: tcell.ColorGray,
	},
	"emoji": {
		// Emoji are rendered by the terminal with their own colors.
		Wall:       "🧱",
		Floor:      "⬛",
		WallColor:  tcell.ColorDefault,
		FloorColor: tcell.ColorDefault,
	},
}

// ThemeNames lists the available themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	th, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (valid: %v)", name, ThemeNames())
	}
	return th, nil
}
