package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Default map dimensions
const (
	DefaultWidth  = 100
	DefaultHeight = 60
)

// TileMap is a fixed-size grid of tiles with bounds-checked access.
// It is owned by a single session and mutated in place.
type TileMap struct {
	grid   rl.Grid
	width  int
	height int
}

// NewTileMap creates a map of the given dimensions filled with Empty tiles
func NewTileMap(width, height int) *TileMap {
	if width <= 0 || height <= 0 {
		panic("TileMap dimensions must be positive")
	}
	return &TileMap{
		grid:   rl.NewGrid(width, height),
		width:  width,
		height: height,
	}
}

// NewDefaultTileMap creates a DefaultWidth x DefaultHeight map
func NewDefaultTileMap() *TileMap {
	return NewTileMap(DefaultWidth, DefaultHeight)
}

// Width returns the number of columns
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *TileMap) Height() int {
	return m.height
}

// Range returns the map bounds as a gruid range
func (m *TileMap) Range() gruid.Range {
	return gruid.NewRange(0, 0, m.width, m.height)
}

// IsValidPosition checks if a position is within map bounds
func (m *TileMap) IsValidPosition(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsPlayablePosition checks if a position is inside the map and not on its border
func (m *TileMap) IsPlayablePosition(p Point) bool {
	return p.X >= 1 && p.X < m.width-1 && p.Y >= 1 && p.Y < m.height-1
}

// IsOnPerimeter checks if a position is on the edge of the map
func (m *TileMap) IsOnPerimeter(p Point) bool {
	return m.IsValidPosition(p) && !m.IsPlayablePosition(p)
}

// Get returns the tile at p and whether p is in bounds
func (m *TileMap) Get(p Point) (Tile, bool) {
	if !m.IsValidPosition(p) {
		return Empty, false
	}
	return Tile(m.grid.At(p)), true
}

// At returns the tile at p, or Empty when p is out of bounds
func (m *TileMap) At(p Point) Tile {
	t, _ := m.Get(p)
	return t
}

// Set writes a tile. Returns false if p is out of bounds.
func (m *TileMap) Set(p Point, t Tile) bool {
	if !m.IsValidPosition(p) {
		return false
	}
	m.grid.Set(p, rl.Cell(t))
	return true
}

// IsWall reports whether p holds a wall
func (m *TileMap) IsWall(p Point) bool {
	return m.At(p) == Wall
}

// Passable reports whether p is in bounds and does not hold a wall
func (m *TileMap) Passable(p Point) bool {
	t, ok := m.Get(p)
	return ok && t != Wall
}

// Fill sets every tile to t
func (m *TileMap) Fill(t Tile) {
	m.grid.Fill(rl.Cell(t))
}

// Clear resets every tile to Empty
func (m *TileMap) Clear() {
	m.Fill(Empty)
}

// ForEachTile iterates over all tiles column by column, bottom to top
func (m *TileMap) ForEachTile(fn func(p Point, t Tile)) {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			p := Point{X: x, Y: y}
			fn(p, Tile(m.grid.At(p)))
		}
	}
}

// Count returns how many tiles equal t
func (m *TileMap) Count(t Tile) int {
	n := 0
	m.ForEachTile(func(_ Point, c Tile) {
		if c == t {
			n++
		}
	})
	return n
}

// Clone returns an independent copy of the map
func (m *TileMap) Clone() *TileMap {
	c := NewTileMap(m.width, m.height)
	m.ForEachTile(func(p Point, t Tile) {
		c.grid.Set(p, rl.Cell(t))
	})
	return c
}

// Equal reports whether both maps have the same size and tiles
func (m *TileMap) Equal(o *TileMap) bool {
	if o == nil || m.width != o.width || m.height != o.height {
		return false
	}
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			p := Point{X: x, Y: y}
			if m.grid.At(p) != o.grid.At(p) {
				return false
			}
		}
	}
	return true
}

// Neighbors8 returns the in-bounds points surrounding p
func (m *TileMap) Neighbors8(p Point) []Point {
	nbs := make([]Point, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := Point{X: p.X + dx, Y: p.Y + dy}
			if m.IsValidPosition(q) {
				nbs = append(nbs, q)
			}
		}
	}
	return nbs
}
