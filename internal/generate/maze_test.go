package generate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mazegen/internal/geometry"
)

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Boundary: arena, Width: 0}},
		{"negative width", Config{Boundary: arena, Width: -10}},
		{"flat boundary", Config{Boundary: geometry.Rect(0, 0, 100, 0), Width: 10}},
		{"inverted boundary", Config{Boundary: geometry.Rect(340, 190, -340, -190), Width: 10}},
		{"bad orientation", Config{Boundary: arena, Width: 10, Orientation: geometry.Orientation(9)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.cfg)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("New() error = %v, want ErrInvalidConfiguration", err)
			}
			if m != nil {
				t.Error("New() should not return a maze on error")
			}
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	build := func() []geometry.Wall {
		m, err := New(Config{Boundary: arena, Width: 10, Seed: 42})
		if err != nil {
			t.Fatal(err)
		}
		m.Generate()
		return m.Walls()
	}
	first, second := build(), build()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different layouts (-first +second):\n%s", diff)
	}
}

func TestGenerateWithInjectedRand(t *testing.T) {
	m, err := New(Config{Boundary: arena, Width: 10, Seed: 5, Rand: rand.New(rand.NewSource(5))})
	if err != nil {
		t.Fatal(err)
	}
	got := m.Generate()
	want := Partition(arena, geometry.Vertical, 10, rand.New(rand.NewSource(5)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate differs from Partition with the same source (-want +got):\n%s", diff)
	}
	if m.Seed() != 5 {
		t.Errorf("Seed() = %d, want 5", m.Seed())
	}
}

func TestGenerateAppendsOnSecondCall(t *testing.T) {
	m, err := New(Config{Boundary: arena, Width: 10, Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	first := m.Generate()
	second := m.Generate()
	all := m.Walls()
	if len(all) != len(first)+len(second) {
		t.Fatalf("Walls() has %d pieces, want %d", len(all), len(first)+len(second))
	}
	if diff := cmp.Diff(first, all[:len(first)]); diff != "" {
		t.Errorf("first layout changed after second Generate:\n%s", diff)
	}
	if cmp.Equal(first, second) {
		t.Error("second Generate should continue the random sequence, not repeat it")
	}
}

func TestGenerateOpenArenaForWideWalls(t *testing.T) {
	m, err := New(Config{Boundary: arena, Width: 200, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if walls := m.Generate(); len(walls) != 0 {
		t.Errorf("got %d walls, want an empty arena", len(walls))
	}
	rooms := m.Rooms()
	if len(rooms) != 1 || rooms[0] != arena {
		t.Errorf("Rooms() = %v, want the whole arena", rooms)
	}
}

func TestWallsReturnsCopy(t *testing.T) {
	m, err := New(Config{Boundary: arena, Width: 10, Seed: 2})
	if err != nil {
		t.Fatal(err)
	}
	m.Generate()
	walls := m.Walls()
	walls[0].Corners[0] = geometry.Pt(9999, 9999)
	if m.Walls()[0].Corners[0] == geometry.Pt(9999, 9999) {
		t.Error("mutating the returned slice should not change the maze")
	}
}

func TestNewPicksSeedWhenUnset(t *testing.T) {
	m, err := New(Config{Boundary: arena, Width: 10})
	if err != nil {
		t.Fatal(err)
	}
	if m.Seed() == 0 {
		t.Error("Seed() should report the clock-derived seed")
	}
}
