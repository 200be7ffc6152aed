package gamemap

// Components labels the 4-connected open areas of the map. It returns the
// label grid (-1 for walls) and the size of each area in cells.
func (m *GameMap) Components() ([][]int, []int) {
	labels := make([][]int, m.Height)
	for y := range labels {
		labels[y] = make([]int, m.Width)
		for x := range labels[y] {
			labels[y][x] = -1
		}
	}

	var sizes []int
	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for sy := 0; sy < m.Height; sy++ {
		for sx := 0; sx < m.Width; sx++ {
			if !m.IsWalkable(sx, sy) || labels[sy][sx] >= 0 {
				continue
			}
			id := len(sizes)
			size := 0
			labels[sy][sx] = id
			queue := [][2]int{{sx, sy}}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				size++
				for _, d := range dirs {
					nx, ny := cur[0]+d[0], cur[1]+d[1]
					if !m.IsWalkable(nx, ny) || labels[ny][nx] >= 0 {
						continue
					}
					labels[ny][nx] = id
					queue = append(queue, [2]int{nx, ny})
				}
			}
			sizes = append(sizes, size)
		}
	}
	return labels, sizes
}

// Connected reports whether two cells are walkable and share an open area.
func (m *GameMap) Connected(x1, y1, x2, y2 int) bool {
	if !m.IsWalkable(x1, y1) || !m.IsWalkable(x2, y2) {
		return false
	}
	labels, _ := m.Components()
	return labels[y1][x1] == labels[y2][x2]
}
