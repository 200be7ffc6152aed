package generate

import (
	"math/rand"
	"testing"

	"mazegen/internal/geometry"
)

func verticalWall(x, y1, y2, width int) geometry.Wall {
	return geometry.Wall{Corners: geometry.Rect(x-width, y1, x+width, y2).Corners, Orientation: geometry.Vertical}
}

func horizontalWall(y, x1, x2, width int) geometry.Wall {
	return geometry.Wall{Corners: geometry.Rect(x1, y-width, x2, y+width).Corners, Orientation: geometry.Horizontal}
}

func TestCutDropsShortWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name string
		wall geometry.Wall
		want int
	}{
		{"vertical at threshold", verticalWall(0, 0, 60, 10), 0},
		{"vertical just over", verticalWall(0, 0, 61, 10), 2},
		{"horizontal at threshold", horizontalWall(0, 0, 60, 10), 0},
		{"horizontal just over", horizontalWall(0, 0, 61, 10), 2},
		{"short but thick", verticalWall(0, 0, 30, 10), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(Cut(tc.wall, 10, rng)); got != tc.want {
				t.Errorf("Cut returned %d pieces, want %d", got, tc.want)
			}
		})
	}
}

func TestCutVerticalGap(t *testing.T) {
	const width = 10
	wall := verticalWall(0, -190, 190, width)
	for seed := int64(0); seed < 50; seed++ {
		pieces := Cut(wall, width, rand.New(rand.NewSource(seed)))
		if len(pieces) != 2 {
			t.Fatalf("seed=%d: got %d pieces, want 2", seed, len(pieces))
		}
		a, b := pieces[0], pieces[1]
		wantHole := 2*width + rand.New(rand.NewSource(seed)).Intn(380-4*width)

		if a.Corners[geometry.TopLeft] != wall.Corners[geometry.TopLeft] {
			t.Errorf("seed=%d: piece A should start at the wall's top-left", seed)
		}
		if b.Corners[geometry.BottomRight] != wall.Corners[geometry.BottomRight] {
			t.Errorf("seed=%d: piece B should end at the wall's bottom-right", seed)
		}
		gapTop := a.Corners[geometry.BottomLeft].Y
		gapBottom := b.Corners[geometry.TopLeft].Y
		if gapBottom-gapTop != 4*width {
			t.Errorf("seed=%d: gap is %d wide, want %d", seed, gapBottom-gapTop, 4*width)
		}
		if center := gapTop + 2*width - wall.Corners[geometry.TopLeft].Y; center != wantHole {
			t.Errorf("seed=%d: gap centered at %d, want %d", seed, center, wantHole)
		}
		for i, p := range pieces {
			if p.Orientation != geometry.Vertical {
				t.Errorf("seed=%d: piece %d orientation %v", seed, i, p.Orientation)
			}
			if p.Thickness() != 2*width {
				t.Errorf("seed=%d: piece %d thickness %d, want %d", seed, i, p.Thickness(), 2*width)
			}
		}
	}
}

func TestCutHorizontalGap(t *testing.T) {
	const width = 10
	wall := horizontalWall(25, -340, 340, width)
	for seed := int64(0); seed < 50; seed++ {
		pieces := Cut(wall, width, rand.New(rand.NewSource(seed)))
		if len(pieces) != 2 {
			t.Fatalf("seed=%d: got %d pieces, want 2", seed, len(pieces))
		}
		a, b := pieces[0], pieces[1]
		gapLeft := a.Corners[geometry.TopRight].X
		gapRight := b.Corners[geometry.TopLeft].X
		if gapRight-gapLeft != 4*width {
			t.Errorf("seed=%d: gap is %d wide, want %d", seed, gapRight-gapLeft, 4*width)
		}
		center := gapLeft + 2*width - wall.Corners[geometry.TopLeft].X
		if center < 2*width || center > 680-2*width-1 {
			t.Errorf("seed=%d: gap center %d outside [%d, %d]", seed, center, 2*width, 680-2*width-1)
		}
		if a.Corners[geometry.BottomLeft] != wall.Corners[geometry.BottomLeft] ||
			b.Corners[geometry.BottomRight] != wall.Corners[geometry.BottomRight] {
			t.Errorf("seed=%d: pieces should keep the wall's outer corners", seed)
		}
		for i, p := range pieces {
			if p.Thickness() != 2*width {
				t.Errorf("seed=%d: piece %d thickness %d, want %d", seed, i, p.Thickness(), 2*width)
			}
		}
	}
}

func TestDrawOffsetBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seenLo, seenHi := false, false
	for i := 0; i < 5000; i++ {
		v := drawOffset(rng, 61, 10)
		if v < 20 || v > 40 {
			t.Fatalf("drawOffset(61, 10) = %d, outside [20, 40]", v)
		}
		seenLo = seenLo || v == 20
		seenHi = seenHi || v == 40
	}
	if !seenLo || !seenHi {
		t.Errorf("expected both interval ends to be drawn (lo=%v hi=%v)", seenLo, seenHi)
	}
}
