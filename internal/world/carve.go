package world

// StampRoom sets the interior of the room to floor.
// The row at Y1 and the column at X1 stay untouched, so two rooms built on
// adjacent rectangles keep a wall between them.
func StampRoom(g *Grid, room Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			g.Tiles[g.XYIdx(x, y)] = TileFloor
		}
	}
}

// CorridorPath returns the cells visited walking from (x1, y1) to (x2, y2),
// moving along x first and then along y. The start cell is not included; the
// target is, unless both points coincide.
func CorridorPath(x1, y1, x2, y2 int) [][2]int {
	path := make([][2]int, 0, abs(x2-x1)+abs(y2-y1))
	x, y := x1, y1
	for x != x2 || y != y2 {
		switch {
		case x < x2:
			x++
		case x > x2:
			x--
		case y < y2:
			y++
		default:
			y--
		}
		path = append(path, [2]int{x, y})
	}
	return path
}

// CarveCorridor digs a dogleg corridor from (x1, y1) to (x2, y2).
func CarveCorridor(g *Grid, x1, y1, x2, y2 int) {
	for _, p := range CorridorPath(x1, y1, x2, y2) {
		g.Tiles[g.XYIdx(p[0], p[1])] = TileFloor
	}
}

// CarveHorizontalTunnel sets every cell of row y between x1 and x2 to floor.
func CarveHorizontalTunnel(g *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.setIndexed(g.XYIdx(x, y), TileFloor)
	}
}

// CarveVerticalTunnel sets every cell of column x between y1 and y2 to floor.
func CarveVerticalTunnel(g *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.setIndexed(g.XYIdx(x, y), TileFloor)
	}
}

// setIndexed writes t when idx addresses a cell; other indices are skipped.
func (g *Grid) setIndexed(idx int, t Tile) {
	if idx >= 0 && idx < len(g.Tiles) {
		g.Tiles[idx] = t
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
