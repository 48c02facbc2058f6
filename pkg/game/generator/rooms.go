package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"dungeoncrawl/pkg/engine/world"
)

// RoomCount draws how many rooms to attempt, uniform over [MinRooms, MaxRooms]
func (g *RoomGenerator) RoomCount(rng *rand.Rand) int {
	return g.opts.MinRooms + rng.Intn(g.opts.MaxRooms-g.opts.MinRooms+1)
}

// PlaceRooms tries to place target rooms on m and stamps each accepted one.
// A room that does not fit after PlacementAttempts candidates is skipped.
func (g *RoomGenerator) PlaceRooms(m *world.TileMap, rng *rand.Rand, target int) []world.Room {
	rooms := make([]world.Room, 0, target)
	for i := 0; i < target; i++ {
		r, ok := g.placeRoom(rng, rooms)
		if !ok {
			g.logger.WithField("room", i).Debug("room skipped, no free space")
			continue
		}
		StampRoom(m, r)
		rooms = append(rooms, r)
	}
	return rooms
}

// placeRoom draws candidates until one clears every placed room
func (g *RoomGenerator) placeRoom(rng *rand.Rand, placed []world.Room) (world.Room, bool) {
	for attempt := 0; attempt < g.opts.PlacementAttempts; attempt++ {
		r := g.candidate(rng)
		if !overlapsAny(r, placed) {
			if attempt > 0 {
				g.logger.WithFields(logrus.Fields{"attempts": attempt + 1}).Trace("room placed")
			}
			return r, true
		}
	}
	return world.Room{}, false
}

// candidate draws x, y, width and height in that order
func (g *RoomGenerator) candidate(rng *rand.Rand) world.Room {
	x := 1 + rng.Intn(g.opts.Width-g.opts.MaxRoomWidth)
	y := 1 + rng.Intn(g.opts.Height-g.opts.MaxRoomHeight)
	w := world.MinRoomSize + rng.Intn(g.opts.MaxRoomWidth-world.MinRoomSize)
	h := world.MinRoomSize + rng.Intn(g.opts.MaxRoomHeight-world.MinRoomSize)
	return world.NewRoom(world.Point{X: x, Y: y}, w, h)
}

func overlapsAny(r world.Room, rooms []world.Room) bool {
	for _, o := range rooms {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// StampRoom writes the room onto m: wall on the outer ring, floor inside
func StampRoom(m *world.TileMap, r world.Room) {
	tr := r.TopRight()
	for x := r.BottomLeft.X; x < tr.X; x++ {
		for y := r.BottomLeft.Y; y < tr.Y; y++ {
			p := world.Point{X: x, Y: y}
			if r.InteriorContains(p) {
				m.Set(p, world.Floor)
			} else {
				m.Set(p, world.Wall)
			}
		}
	}
}
