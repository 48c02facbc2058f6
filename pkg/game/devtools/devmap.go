package devtools

import (
	"math/rand"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/generator"
)

// Dev map dimensions
const (
	DevMapWidth  = 30
	DevMapHeight = 16
)

// DevRooms is the hard-coded layout of the developer testing map: three rooms
// of different sizes in a row, joined by the normal hallway carving.
var DevRooms = []world.Room{
	world.NewRoom(world.Point{X: 1, Y: 1}, 8, 6),
	world.NewRoom(world.Point{X: 12, Y: 2}, 6, 6),
	world.NewRoom(world.Point{X: 21, Y: 7}, 7, 7),
}

// DevMap builds the developer testing map. It satisfies session.Builder, so
// sessions on it still place occupants from the seed.
type DevMap struct{}

// Name returns the name of this layout
func (DevMap) Name() string {
	return "Developer Test Map"
}

// Build stamps DevRooms and connects them with hallways drawn from rng
func (DevMap) Build(rng *rand.Rand) *generator.Dungeon {
	m := world.NewTileMap(DevMapWidth, DevMapHeight)
	rooms := make([]world.Room, len(DevRooms))
	copy(rooms, DevRooms)

	for _, r := range rooms {
		generator.StampRoom(m, r)
	}
	hallways := generator.Connect(m, rooms, rng)

	d := &generator.Dungeon{Map: m, Rooms: rooms, Hallways: hallways}
	if err := d.Validate(); err != nil {
		panic("dev map is invalid: " + err.Error())
	}
	return d
}

// Generate builds the dev map from seed
func (dm DevMap) Generate(seed int64) *generator.Dungeon {
	d := dm.Build(generator.NewRand(seed))
	d.Seed = seed
	return d
}
