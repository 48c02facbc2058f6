package world

import "github.com/zyedidia/generic/mapset"

// FOVRadius is the default half-size of the square visibility window around the avatar.
const FOVRadius = 4

// VisibleSet is a set of map positions
type VisibleSet = mapset.Set[Point]

// CalculateFOV returns every in-bounds position within Chebyshev distance radius of center.
// Walls do not block the window; it is a plain square around the center.
func CalculateFOV(m *TileMap, center Point, radius int) VisibleSet {
	visible := mapset.New[Point]()
	if m == nil || !m.IsValidPosition(center) || radius < 0 {
		return visible
	}

	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			p := Point{X: x, Y: y}
			if m.IsValidPosition(p) {
				visible.Put(p)
			}
		}
	}
	return visible
}
