package generator

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"dungeoncrawl/pkg/engine/world"
)

// floorPather moves in four directions over non-wall tiles
type floorPather struct {
	m   *world.TileMap
	nbs paths.Neighbors
}

func (fp *floorPather) Neighbors(p gruid.Point) []gruid.Point {
	return fp.nbs.Cardinal(p, fp.m.Passable)
}

// RoomsConnected reports whether every room center lies in the same connected
// component as the center of room 0. On failure it returns the first unreachable room.
func RoomsConnected(m *world.TileMap, rooms []world.Room) (int, bool) {
	if len(rooms) < 2 {
		return -1, true
	}
	pr := paths.NewPathRange(m.Range())
	origin := rooms[0].Center()
	pr.CCMap(&floorPather{m: m}, origin)
	id := pr.CCMapAt(origin)
	for i, r := range rooms[1:] {
		if pr.CCMapAt(r.Center()) != id {
			return i + 1, false
		}
	}
	return -1, true
}
