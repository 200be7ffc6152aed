package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"mazegen/internal/geometry"
)

// ErrInvalidConfiguration is wrapped by every error New returns.
var ErrInvalidConfiguration = errors.New("invalid maze configuration")

// Config drives maze generation for one arena.
type Config struct {
	Boundary    geometry.Region
	Width       int                  // wall half-thickness; walls are 2*Width thick
	Orientation geometry.Orientation // orientation of the first divider
	Seed        int64                // seeds the generator when Rand is nil; 0 picks one from the clock
	Rand        *rand.Rand           // optional injected source; Seed is then only recorded
}

// Maze accumulates the wall pieces generated inside a boundary.
type Maze struct {
	boundary    geometry.Region
	width       int
	orientation geometry.Orientation
	seed        int64
	rng         *rand.Rand
	walls       []geometry.Wall
	rooms       []geometry.Region
}

// New validates cfg and returns an empty maze. The random source is seeded
// here, once, and advanced by every subsequent draw.
func New(cfg Config) (*Maze, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfiguration, cfg.Width)
	}
	if err := cfg.Boundary.Validate(); err != nil {
		return nil, fmt.Errorf("%w: boundary: %w", ErrInvalidConfiguration, err)
	}
	if cfg.Orientation != geometry.Vertical && cfg.Orientation != geometry.Horizontal {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, cfg.Orientation)
	}

	seed := cfg.Seed
	rng := cfg.Rand
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &Maze{
		boundary:    cfg.Boundary,
		width:       cfg.Width,
		orientation: cfg.Orientation,
		seed:        seed,
		rng:         rng,
	}, nil
}

// Generate partitions the boundary and appends the resulting wall pieces.
// It is not idempotent: a second call continues the random sequence and
// appends another, different layout on top of the first. The pieces added
// by this call are returned.
func (m *Maze) Generate() []geometry.Wall {
	p := partitioner{
		width: m.width,
		rng:   m.rng,
		onLeaf: func(r geometry.Region) {
			m.rooms = append(m.rooms, r)
		},
	}
	added := p.partition(m.boundary, m.orientation)
	m.walls = append(m.walls, added...)
	return added
}

// Walls returns a copy of the accumulated wall pieces in emission order.
func (m *Maze) Walls() []geometry.Wall {
	return append([]geometry.Wall(nil), m.walls...)
}

// Rooms returns the undivided regions reached during generation.
func (m *Maze) Rooms() []geometry.Region {
	return append([]geometry.Region(nil), m.rooms...)
}

// Boundary returns the outer region.
func (m *Maze) Boundary() geometry.Region { return m.boundary }

// Width returns the wall half-thickness unit.
func (m *Maze) Width() int { return m.width }

// Seed returns the seed the maze was built with.
func (m *Maze) Seed() int64 { return m.seed }
