// Package generator tests room placement, hallway carving, connectivity and
// spanning tree minimality.
package generator

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"dungeoncrawl/pkg/engine/world"
)

// countReachableFloor returns the number of Floor tiles reachable from start via N/E/S/W.
func countReachableFloor(m *world.TileMap, start world.Point) int {
	if m.At(start) != world.Floor {
		return 0
	}
	visited := map[world.Point]bool{start: true}
	queue := []world.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range world.AllDirections() {
			n := d.Step(p)
			if m.At(n) == world.Floor && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

var testSeeds = []int64{1, 2, 3, 42, 1234, 99999, -7}

func TestGenerate_Deterministic(t *testing.T) {
	a := DefaultGenerator.Generate(42)
	b := DefaultGenerator.Generate(42)

	if !a.Map.Equal(b.Map) {
		t.Fatal("same seed produced different maps")
	}
	testutil.AssertEqual(t, "rooms", len(a.Rooms), len(b.Rooms))
	for i := range a.Rooms {
		testutil.AssertEqual(t, "room", a.Rooms[i], b.Rooms[i])
	}
	testutil.AssertEqual(t, "seed", a.Seed, int64(42))

	c := DefaultGenerator.Generate(43)
	if a.Map.Equal(c.Map) {
		t.Error("different seeds produced identical maps")
	}
}

func TestGenerate_RoomsDoNotOverlap(t *testing.T) {
	for _, seed := range testSeeds {
		d := DefaultGenerator.Generate(seed)
		for i := range d.Rooms {
			for j := i + 1; j < len(d.Rooms); j++ {
				if d.Rooms[i].Intersects(d.Rooms[j]) {
					t.Fatalf("seed %d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestGenerate_AllRoomsReachable(t *testing.T) {
	for _, seed := range testSeeds {
		d := DefaultGenerator.Generate(seed)
		if len(d.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms", seed)
		}
		total := d.Map.Count(world.Floor)
		reached := countReachableFloor(d.Map, d.Rooms[0].Center())
		if reached != total {
			t.Errorf("seed %d: reached %d floor tiles, want %d", seed, reached, total)
		}
		if i, ok := RoomsConnected(d.Map, d.Rooms); !ok {
			t.Errorf("seed %d: room %d unreachable", seed, i)
		}
	}
}

func TestGenerate_RoomCountAndHallways(t *testing.T) {
	opts := DefaultOptions()
	for _, seed := range testSeeds {
		d := DefaultGenerator.Generate(seed)
		if len(d.Rooms) < 1 || len(d.Rooms) > opts.MaxRooms {
			t.Errorf("seed %d: %d rooms outside [1, %d]", seed, len(d.Rooms), opts.MaxRooms)
		}
		testutil.AssertEqual(t, "hallways", len(d.Hallways), len(d.Rooms)-1)
	}
}

func TestGenerate_BorderNeverFloor(t *testing.T) {
	for _, seed := range testSeeds {
		d := DefaultGenerator.Generate(seed)
		d.Map.ForEachTile(func(p world.Point, tile world.Tile) {
			if d.Map.IsOnPerimeter(p) && tile == world.Floor {
				t.Fatalf("seed %d: floor on border at %v", seed, p)
			}
		})
	}
}

func TestGenerate_RoomInteriorsAreFloor(t *testing.T) {
	d := DefaultGenerator.Generate(7)
	for i, r := range d.Rooms {
		tr := r.TopRight()
		for x := r.BottomLeft.X + 1; x < tr.X-1; x++ {
			for y := r.BottomLeft.Y + 1; y < tr.Y-1; y++ {
				if got := d.Map.At(world.Point{X: x, Y: y}); got != world.Floor {
					t.Fatalf("room %d interior (%d,%d) is %v", i, x, y, got)
				}
			}
		}
	}
}

func TestRoomCount_Range(t *testing.T) {
	rng := NewRand(3)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := Rooms.RoomCount(rng)
		if n < 6 || n > 20 {
			t.Fatalf("RoomCount = %d, want [6, 20]", n)
		}
		seen[n] = true
	}
	if !seen[6] || !seen[20] {
		t.Errorf("expected both bounds to be drawn, got %v", seen)
	}
}

func TestPlaceRooms_SizesWithinLimits(t *testing.T) {
	m := world.NewDefaultTileMap()
	rooms := Rooms.PlaceRooms(m, NewRand(11), 20)
	for i, r := range rooms {
		if r.Width < world.MinRoomSize || r.Width >= 12 || r.Height < world.MinRoomSize || r.Height >= 12 {
			t.Errorf("room %d has size %dx%d", i, r.Width, r.Height)
		}
		tr := r.TopRight()
		if r.BottomLeft.X < 1 || r.BottomLeft.Y < 1 || tr.X > m.Width()-1 || tr.Y > m.Height()-1 {
			t.Errorf("room %d at %v..%v touches the map border", i, r.BottomLeft, tr)
		}
	}
}

func TestPlaceRooms_SkipsWhenFull(t *testing.T) {
	opts := Options{
		Width: 14, Height: 14,
		MaxRoomWidth: 12, MaxRoomHeight: 12,
		MinRooms: 1, MaxRooms: 1,
		PlacementAttempts: 5,
	}
	g := MustNewRoomGenerator(opts)
	m := world.NewTileMap(opts.Width, opts.Height)

	rooms := g.PlaceRooms(m, NewRand(1), 10)
	if len(rooms) == 0 || len(rooms) >= 10 {
		t.Fatalf("placed %d rooms on a tiny map", len(rooms))
	}
}

func TestStampRoom(t *testing.T) {
	m := world.NewTileMap(10, 10)
	StampRoom(m, world.NewRoom(world.Point{X: 1, Y: 1}, 5, 4))

	testutil.AssertEqual(t, "floor", m.Count(world.Floor), 3*2)
	testutil.AssertEqual(t, "wall", m.Count(world.Wall), 5*4-3*2)
	testutil.AssertEqual(t, "corner", m.At(world.Point{X: 5, Y: 4}), world.Wall)
	testutil.AssertEqual(t, "inside", m.At(world.Point{X: 2, Y: 2}), world.Floor)
	testutil.AssertEqual(t, "outside", m.At(world.Point{X: 6, Y: 2}), world.Empty)
}

func TestOptions_Validate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}

	bad := Options{Width: 10, Height: 10, MaxRoomWidth: 4, MaxRoomHeight: 12, MinRooms: 3, MaxRooms: 2}
	err := bad.Validate()
	testutil.AssertErrorContains(t, err, "max_room_width")
	testutil.AssertErrorContains(t, err, "height")
	testutil.AssertErrorContains(t, err, "max_rooms")
	testutil.AssertErrorContains(t, err, "placement_attempts")

	if _, err := NewRoomGenerator(bad); err == nil {
		t.Error("NewRoomGenerator accepted invalid options")
	}
}

func TestRoomGenerator_SmallMap(t *testing.T) {
	opts := Options{
		Width: 40, Height: 24,
		MaxRoomWidth: 8, MaxRoomHeight: 8,
		MinRooms: 3, MaxRooms: 6,
		PlacementAttempts: 50,
	}
	g := MustNewRoomGenerator(opts)
	for _, seed := range testSeeds {
		d := g.Generate(seed)
		testutil.AssertEqual(t, "width", d.Map.Width(), 40)
		if err := d.Validate(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestPopulate_ClearsMap(t *testing.T) {
	m := world.NewDefaultTileMap()
	m.Fill(world.Collectible)
	Rooms.Populate(m, NewRand(5))

	testutil.AssertEqual(t, "leftover overlays", m.Count(world.Collectible), 0)

	fresh := Rooms.Build(NewRand(5))
	if !m.Equal(fresh.Map) {
		t.Error("Populate on a dirty map differs from a fresh build")
	}
}

func TestDefaultGenerator_Name(t *testing.T) {
	testutil.AssertEqual(t, "name", DefaultGenerator.Name(), "Rooms and Hallways")
}
