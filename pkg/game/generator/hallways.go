package generator

import (
	"math/rand"
	"slices"

	"dungeoncrawl/pkg/engine/unionfind"
	"dungeoncrawl/pkg/engine/world"
)

// Edge joins two rooms by index. Weight is the rounded distance between their centers.
type Edge struct {
	From   int
	To     int
	Weight int
}

// BuildEdges returns one edge per unordered room pair, in (i, j > i) order
func BuildEdges(rooms []world.Room) []Edge {
	edges := make([]Edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, Edge{From: i, To: j, Weight: rooms[i].DistanceTo(rooms[j])})
		}
	}
	return edges
}

// SortEdges orders edges by ascending weight, keeping generation order among equal weights
func SortEdges(edges []Edge) {
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return a.Weight - b.Weight
	})
}

// SpanningTree runs Kruskal over edges for n rooms and returns the kept edges.
// The input slice is not modified.
func SpanningTree(n int, edges []Edge) []Edge {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(edges)
	SortEdges(sorted)

	ds := unionfind.New(n)
	tree := make([]Edge, 0, n-1)
	for _, e := range sorted {
		if ds.Union(e.From, e.To) {
			tree = append(tree, e)
			if len(tree) == n-1 {
				break
			}
		}
	}
	return tree
}

// Connect carves one hallway per spanning tree edge and returns the edges used
func Connect(m *world.TileMap, rooms []world.Room, rng *rand.Rand) []Edge {
	tree := SpanningTree(len(rooms), BuildEdges(rooms))
	for _, e := range tree {
		CarveHallway(m, rooms[e.From], rooms[e.To], rng)
	}
	return tree
}

// CarveHallway links random floor points of a and b with an L-shaped corridor
func CarveHallway(m *world.TileMap, a, b world.Room, rng *rand.Rand) {
	start := a.RandomInteriorPoint(rng)
	end := b.RandomInteriorPoint(rng)
	CarveCorridor(m, start, end)
}

// CarveCorridor walks the dominant axis first, turns once, then walks the other axis.
// Each leg stops one tile short of its end point.
func CarveCorridor(m *world.TileMap, start, end world.Point) {
	dx, dy := end.X-start.X, end.Y-start.Y

	var turn world.Point
	if abs(dx) > abs(dy) {
		turn = world.Point{X: end.X, Y: start.Y}
	} else {
		turn = world.Point{X: start.X, Y: end.Y}
	}

	walkLeg(m, start, turn)
	walkLeg(m, turn, end)
}

// walkLeg carves a straight line from from towards to, excluding to
func walkLeg(m *world.TileMap, from, to world.Point) {
	step := world.Point{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
	for p := from; p != to; p = p.Add(step) {
		CarveTile(m, p)
	}
}

// CarveTile turns an empty or wall tile into floor and walls in any empty
// neighbours. Tiles on the map border are left alone.
func CarveTile(m *world.TileMap, p world.Point) {
	if !m.IsPlayablePosition(p) {
		return
	}
	t := m.At(p)
	if t != world.Empty && t != world.Wall {
		return
	}
	m.Set(p, world.Floor)
	for _, n := range m.Neighbors8(p) {
		if m.At(n) == world.Empty {
			m.Set(n, world.Wall)
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
