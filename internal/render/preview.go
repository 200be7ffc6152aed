package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazegen/internal/gamemap"
	"mazegen/internal/generate"
)

// Preview shows generated layouts on a screen until the user quits.
type Preview struct {
	Screen tcell.Screen
	Theme  Theme
	Seed   int64

	// Build generates a maze for the given seed.
	Build func(seed int64) (*generate.Maze, error)
	// Save persists the maze currently on screen. Optional.
	Save func(m *generate.Maze) error
	// NextSeed supplies seeds for regeneration; defaults to the clock.
	NextSeed func() int64

	renderer *Renderer
	maze     *generate.Maze
	status   Status
}

// Run draws the first layout and handles keys until q or Esc. The screen
// must already be initialised; Run does not finalise it.
func (p *Preview) Run() error {
	if p.NextSeed == nil {
		p.NextSeed = func() int64 { return time.Now().UnixNano() }
	}
	p.renderer = NewRenderer(p.Screen, p.Theme)
	if err := p.load(p.Seed); err != nil {
		return err
	}
	p.draw()

	for {
		ev := p.Screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			p.Screen.Sync()
			p.renderer.Resize()
			p.draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
				if err := p.load(p.NextSeed()); err != nil {
					p.status.Message = err.Error()
				}
				p.draw()
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 's' || ev.Rune() == 'S'):
				p.save()
				p.draw()
			}
		}
	}
}

// Maze returns the layout currently shown.
func (p *Preview) Maze() *generate.Maze { return p.maze }

func (p *Preview) load(seed int64) error {
	m, err := p.Build(seed)
	if err != nil {
		return err
	}
	p.maze = m
	p.status = Status{
		Seed:  m.Seed(),
		Width: m.Width(),
		Walls: len(m.Walls()),
		Rooms: len(m.Rooms()),
	}
	return nil
}

func (p *Preview) save() {
	if p.Save == nil {
		p.status.Message = "saving disabled"
		return
	}
	if err := p.Save(p.maze); err != nil {
		p.status.Message = fmt.Sprintf("save failed: %v", err)
		return
	}
	p.status.Message = fmt.Sprintf("saved seed %d", p.maze.Seed())
}

func (p *Preview) draw() {
	cell := p.renderer.CellSize(p.maze.Boundary())
	gmap := gamemap.Rasterize(p.maze.Boundary(), p.maze.Walls(), cell)
	_, sizes := gmap.Components()
	p.status.Cell = cell
	p.status.Components = len(sizes)

	p.renderer.DrawMap(gmap)
	p.renderer.DrawHUD(p.status)
}
