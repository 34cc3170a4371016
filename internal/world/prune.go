package world

// DefaultPruneDepth is the furthest distance, in steps, that PruneUnreachable
// follows from the start tile.
const DefaultPruneDepth = 200

// Unreachable marks a tile in a distance map that the sweep never reached.
const Unreachable = -1

var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// DistanceMap returns the step distance from start to every floor tile using
// 4-directional moves. Tiles further than maxDepth, non-floor tiles and
// tiles that cannot be reached hold Unreachable. A start that is out of range
// or not floor yields a map with no reachable tiles.
func DistanceMap(g *Grid, start, maxDepth int) []int {
	dist := make([]int, len(g.Tiles))
	for i := range dist {
		dist[i] = Unreachable
	}
	if start < 0 || start >= len(g.Tiles) || !g.Tiles[start].IsPassable() {
		return dist
	}

	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if dist[idx] >= maxDepth {
			continue
		}

		x, y := g.IdxXY(idx)
		for _, d := range orthogonal {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			next := g.XYIdx(nx, ny)
			if dist[next] != Unreachable || !g.Tiles[next].IsPassable() {
				continue
			}
			dist[next] = dist[idx] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// PruneUnreachable turns every floor tile that cannot be reached from start
// within maxDepth steps into a wall. It returns the index of the reachable
// tile furthest from start, which makes a natural exit. ok is false when
// nothing was reachable.
func PruneUnreachable(g *Grid, start, maxDepth int) (exit int, ok bool) {
	dist := DistanceMap(g, start, maxDepth)
	best := Unreachable
	for i, tile := range g.Tiles {
		if tile != TileFloor {
			continue
		}
		if dist[i] == Unreachable {
			g.Tiles[i] = TileWall
			continue
		}
		if dist[i] > best {
			best = dist[i]
			exit = i
		}
	}
	return exit, best != Unreachable
}
