package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"mazegen/internal/gamemap"
	"mazegen/internal/generate"
	"mazegen/internal/geometry"
)

func newSimScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(10, 10, 40, 20)
	sx, sy, ok := c.WorldToScreen(10, 10)
	if !ok || sx != 20 || sy != 10 {
		t.Errorf("center maps to (%d,%d,%v), want (20,10,true)", sx, sy, ok)
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 10 || wy != 10 {
		t.Errorf("ScreenToWorld = (%d,%d), want (10,10)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(-100, 0); ok {
		t.Error("far-left cell should be off screen")
	}
}

func TestCameraFitCentersMap(t *testing.T) {
	c := NewCamera(0, 0, 40, 20)
	c.Fit(10, 10)
	sx, sy, ok := c.WorldToScreen(0, 0)
	if !ok || sx != 10 || sy != 5 {
		t.Errorf("top-left cell at (%d,%d,%v), want (10,5,true)", sx, sy, ok)
	}
}

func TestCellSizeFitsBoundary(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := NewRenderer(s, Themes["ascii"])
	boundary := geometry.Rect(-340, -190, 340, 190)
	cell := r.CellSize(boundary)
	gmap := gamemap.Rasterize(boundary, nil, cell)
	if gmap.Width*2 > 80 || gmap.Height > 24-hudRows {
		t.Errorf("cell %d gives %dx%d map, does not fit 80x22", cell, gmap.Width, gmap.Height)
	}
	if cell > 1 {
		smaller := gamemap.Rasterize(boundary, nil, cell-1)
		if smaller.Width*2 <= 80 && smaller.Height <= 24-hudRows {
			t.Errorf("cell %d is not the smallest that fits", cell)
		}
	}
}

func TestDrawMapUsesTheme(t *testing.T) {
	s := newSimScreen(t, 20, 8)
	r := NewRenderer(s, Themes["ascii"])
	gmap := gamemap.New(10, 6)
	for y := 0; y < 6; y++ {
		gmap.Set(3, y, gamemap.MakeWall())
	}
	r.DrawMap(gmap)

	row := screenRow(s, 0)
	if want := "......##............"; row != want {
		t.Errorf("row 0 = %q, want %q", row, want)
	}
}

func TestDrawHUD(t *testing.T) {
	s := newSimScreen(t, 80, 10)
	r := NewRenderer(s, Themes["blocks"])
	r.DrawHUD(Status{Seed: 42, Width: 10, Cell: 12, Walls: 18, Rooms: 10, Components: 1, Message: "saved"})

	status := screenRow(s, 8)
	for _, want := range []string{"seed 42", "width 10", "walls 18", "rooms 10", "areas 1"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q missing %q", status, want)
		}
	}
	if help := screenRow(s, 9); !strings.HasPrefix(help, "saved") {
		t.Errorf("help line %q should start with the message", help)
	}
}

func TestLookupTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, err := LookupTheme(name); err != nil {
			t.Errorf("LookupTheme(%q): %v", name, err)
		}
	}
	if _, err := LookupTheme("neon"); err == nil {
		t.Error("unknown theme should fail")
	}
}

func testBuilder(t *testing.T, seeds *[]int64) func(int64) (*generate.Maze, error) {
	return func(seed int64) (*generate.Maze, error) {
		*seeds = append(*seeds, seed)
		m, err := generate.New(generate.Config{Boundary: geometry.Rect(-340, -190, 340, 190), Width: 10, Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		m.Generate()
		return m, nil
	}
}

func postKeys(t *testing.T, s tcell.Screen, keys ...rune) {
	t.Helper()
	for _, k := range keys {
		if err := s.PostEvent(tcell.NewEventKey(tcell.KeyRune, k, tcell.ModNone)); err != nil {
			t.Fatalf("post key %q: %v", k, err)
		}
	}
}

func TestPreviewRegenerateSaveQuit(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	var seeds []int64
	var saved []int64
	p := &Preview{
		Screen:   s,
		Theme:    Themes["blocks"],
		Seed:     7,
		Build:    testBuilder(t, &seeds),
		Save:     func(m *generate.Maze) error { saved = append(saved, m.Seed()); return nil },
		NextSeed: func() int64 { return 99 },
	}
	postKeys(t, s, 'r', 's', 'q')

	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seeds) != 2 || seeds[0] != 7 || seeds[1] != 99 {
		t.Errorf("built seeds %v, want [7 99]", seeds)
	}
	if len(saved) != 1 || saved[0] != 99 {
		t.Errorf("saved seeds %v, want [99]", saved)
	}
	if p.Maze().Seed() != 99 {
		t.Errorf("current maze seed %d, want 99", p.Maze().Seed())
	}
}

func TestPreviewSaveFailureIsShown(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	var seeds []int64
	p := &Preview{
		Screen: s,
		Theme:  Themes["ascii"],
		Seed:   3,
		Build:  testBuilder(t, &seeds),
		Save:   func(*generate.Maze) error { return errors.New("disk full") },
	}
	postKeys(t, s, 's')
	if err := s.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if help := screenRow(s, 23); !strings.Contains(help, "save failed: disk full") {
		t.Errorf("help line %q should report the save failure", help)
	}
}

func TestPreviewBuildErrorStopsRun(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	p := &Preview{
		Screen: s,
		Build:  func(int64) (*generate.Maze, error) { return nil, generate.ErrInvalidConfiguration },
	}
	if err := p.Run(); !errors.Is(err, generate.ErrInvalidConfiguration) {
		t.Errorf("Run error = %v, want ErrInvalidConfiguration", err)
	}
}
