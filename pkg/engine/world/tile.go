package world

import "codeberg.org/anaseto/gruid/rl"

// Tile is the state of one map cell. The zero value is Empty.
type Tile rl.Cell

// These constants represent the different kinds of map tiles.
const (
	Empty Tile = iota // nothing, outside of rooms and corridors
	Floor             // walkable ground
	Wall              // blocks movement

	// Occupant overlays. They are written on top of walkable cells by
	// session logic and are never interpreted by generation.
	Avatar
	Enemy
	Collectible
)

// String returns a human readable tile name
func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Avatar:
		return "avatar"
	case Enemy:
		return "enemy"
	case Collectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// IsOverlay reports whether the tile is an occupant marker
func (t Tile) IsOverlay() bool {
	return t == Avatar || t == Enemy || t == Collectible
}

// IsWalkable reports whether the tile is floor or an occupant standing on floor
func (t Tile) IsWalkable() bool {
	return t == Floor || t.IsOverlay()
}
