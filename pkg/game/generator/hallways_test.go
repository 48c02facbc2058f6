package generator

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"dungeoncrawl/pkg/engine/unionfind"
	"dungeoncrawl/pkg/engine/world"
)

func pt(x, y int) world.Point { return world.Point{X: x, Y: y} }

func TestBuildEdges_Order(t *testing.T) {
	rooms := []world.Room{
		world.NewRoom(pt(1, 1), 4, 4),
		world.NewRoom(pt(11, 1), 4, 4),
		world.NewRoom(pt(1, 11), 4, 4),
	}
	edges := BuildEdges(rooms)

	want := []Edge{{0, 1, 10}, {0, 2, 10}, {1, 2, 14}}
	testutil.AssertEqual(t, "count", len(edges), len(want))
	for i := range want {
		testutil.AssertEqual(t, "edge", edges[i], want[i])
	}
}

func TestSortEdges_Stable(t *testing.T) {
	edges := []Edge{{0, 1, 5}, {0, 2, 3}, {1, 2, 5}, {0, 3, 3}, {2, 3, 1}}
	SortEdges(edges)

	want := []Edge{{2, 3, 1}, {0, 2, 3}, {0, 3, 3}, {0, 1, 5}, {1, 2, 5}}
	for i := range want {
		testutil.AssertEqual(t, "edge", edges[i], want[i])
	}
}

func TestSpanningTree_Sizes(t *testing.T) {
	testutil.AssertEqual(t, "zero", len(SpanningTree(0, nil)), 0)
	testutil.AssertEqual(t, "one", len(SpanningTree(1, nil)), 0)

	edges := []Edge{{0, 1, 2}, {1, 2, 2}, {0, 2, 2}}
	tree := SpanningTree(3, edges)
	testutil.AssertEqual(t, "three", len(tree), 2)
	// Equal weights keep generation order, so the last edge closes a cycle.
	testutil.AssertEqual(t, "first", tree[0], Edge{0, 1, 2})
	testutil.AssertEqual(t, "second", tree[1], Edge{1, 2, 2})
	testutil.AssertEqual(t, "input untouched", edges[2], Edge{0, 2, 2})
}

func treeWeight(edges []Edge) int {
	w := 0
	for _, e := range edges {
		w += e.Weight
	}
	return w
}

// bruteForceMST tries every (n-1)-edge subset and returns the lightest spanning tree weight.
func bruteForceMST(n int, edges []Edge) int {
	best := -1
	var pick func(start int, chosen []Edge)
	pick = func(start int, chosen []Edge) {
		if len(chosen) == n-1 {
			ds := unionfind.New(n)
			for _, e := range chosen {
				if !ds.Union(e.From, e.To) {
					return
				}
			}
			if w := treeWeight(chosen); best < 0 || w < best {
				best = w
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, make([]Edge, 0, n-1))
	return best
}

func TestSpanningTree_Minimal(t *testing.T) {
	opts := Options{
		Width: 60, Height: 40,
		MaxRoomWidth: 10, MaxRoomHeight: 10,
		MinRooms: 3, MaxRooms: 6,
		PlacementAttempts: 100,
	}
	g := MustNewRoomGenerator(opts)

	for seed := int64(0); seed < 15; seed++ {
		rng := NewRand(seed)
		m := world.NewTileMap(opts.Width, opts.Height)
		rooms := g.PlaceRooms(m, rng, g.RoomCount(rng))
		edges := BuildEdges(rooms)

		tree := SpanningTree(len(rooms), edges)
		testutil.AssertEqual(t, "edges", len(tree), len(rooms)-1)

		ds := unionfind.New(len(rooms))
		for _, e := range tree {
			ds.Union(e.From, e.To)
		}
		testutil.AssertEqual(t, "components", ds.Count(), 1)

		if got, want := treeWeight(tree), bruteForceMST(len(rooms), edges); got != want {
			t.Errorf("seed %d: tree weight %d, minimum is %d", seed, got, want)
		}
	}
}

func TestCarveCorridor_HorizontalFirst(t *testing.T) {
	m := world.NewTileMap(12, 8)
	CarveCorridor(m, pt(2, 2), pt(8, 4))

	for x := 2; x <= 8; x++ {
		testutil.AssertEqual(t, "horizontal leg", m.At(pt(x, 2)), world.Floor)
	}
	testutil.AssertEqual(t, "vertical leg", m.At(pt(8, 3)), world.Floor)
	// The end point itself is not carved by the leg.
	testutil.AssertEqual(t, "end", m.At(pt(8, 4)), world.Wall)
	testutil.AssertEqual(t, "other corner", m.At(pt(2, 4)), world.Empty)
}

func TestCarveCorridor_TieGoesVertical(t *testing.T) {
	m := world.NewTileMap(10, 10)
	CarveCorridor(m, pt(2, 2), pt(5, 5))

	for y := 2; y <= 5; y++ {
		testutil.AssertEqual(t, "vertical leg", m.At(pt(2, y)), world.Floor)
	}
	for x := 3; x <= 4; x++ {
		testutil.AssertEqual(t, "horizontal leg", m.At(pt(x, 5)), world.Floor)
	}
	testutil.AssertEqual(t, "turn not taken", m.At(pt(5, 2)), world.Empty)
}

func TestCarveCorridor_FlankedByWalls(t *testing.T) {
	m := world.NewTileMap(16, 10)
	CarveCorridor(m, pt(5, 5), pt(10, 5))

	for x := 5; x <= 9; x++ {
		testutil.AssertEqual(t, "corridor", m.At(pt(x, 5)), world.Floor)
	}
	for x := 4; x <= 10; x++ {
		testutil.AssertEqual(t, "below", m.At(pt(x, 4)), world.Wall)
		testutil.AssertEqual(t, "above", m.At(pt(x, 6)), world.Wall)
	}
	testutil.AssertEqual(t, "floor", m.Count(world.Floor), 5)
}

func TestCarveTile_Idempotent(t *testing.T) {
	m := world.NewTileMap(20, 20)
	CarveCorridor(m, pt(3, 3), pt(15, 12))
	once := m.Clone()

	CarveCorridor(m, pt(3, 3), pt(15, 12))
	if !m.Equal(once) {
		t.Error("carving the same corridor twice changed the map")
	}
}

func TestCarveTile_Rules(t *testing.T) {
	m := world.NewTileMap(6, 6)

	CarveTile(m, pt(0, 3))
	testutil.AssertEqual(t, "border", m.At(pt(0, 3)), world.Empty)

	m.Set(pt(2, 2), world.Collectible)
	CarveTile(m, pt(2, 2))
	testutil.AssertEqual(t, "overlay", m.At(pt(2, 2)), world.Collectible)
	testutil.AssertEqual(t, "overlay neighbours", m.Count(world.Wall), 0)

	m.Set(pt(3, 3), world.Wall)
	CarveTile(m, pt(3, 3))
	testutil.AssertEqual(t, "wall opened", m.At(pt(3, 3)), world.Floor)
	testutil.AssertEqual(t, "overlay kept", m.At(pt(2, 2)), world.Collectible)
	testutil.AssertEqual(t, "walls", m.Count(world.Wall), 7)
}

func TestConnect_UsesTreeEdges(t *testing.T) {
	m := world.NewTileMap(40, 20)
	rooms := []world.Room{
		world.NewRoom(pt(2, 2), 6, 6),
		world.NewRoom(pt(20, 3), 5, 5),
		world.NewRoom(pt(10, 12), 7, 5),
	}
	for _, r := range rooms {
		StampRoom(m, r)
	}

	edges := Connect(m, rooms, NewRand(9))
	testutil.AssertEqual(t, "edges", len(edges), 2)
	if i, ok := RoomsConnected(m, rooms); !ok {
		t.Errorf("room %d not connected", i)
	}
}
