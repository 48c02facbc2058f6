package world

import (
	"math"
	"math/rand"
)

// MinRoomSize is the smallest room side, wall border included.
// It leaves at least 2x2 floor inside.
const MinRoomSize = 4

// Room is an axis-aligned rectangle anchored at its bottom-left corner.
// The outermost ring of the rectangle is wall, the rest is floor.
type Room struct {
	BottomLeft Point
	Width      int
	Height     int
}

// NewRoom creates a room anchored at bottomLeft
func NewRoom(bottomLeft Point, width, height int) Room {
	return Room{BottomLeft: bottomLeft, Width: width, Height: height}
}

// TopRight returns the corner one past the last column and row of the room
func (r Room) TopRight() Point {
	return Point{X: r.BottomLeft.X + r.Width, Y: r.BottomLeft.Y + r.Height}
}

// Center returns the midpoint between the bottom-left and top-right corners
func (r Room) Center() Point {
	tr := r.TopRight()
	return Point{X: (tr.X + r.BottomLeft.X) / 2, Y: (tr.Y + r.BottomLeft.Y) / 2}
}

// Intersects reports whether the two rectangles overlap on both axes.
// Bounds are inclusive on the top-right corner, so rooms must keep a gap.
func (r Room) Intersects(o Room) bool {
	rtr, otr := r.TopRight(), o.TopRight()
	return r.BottomLeft.X <= otr.X &&
		rtr.X >= o.BottomLeft.X &&
		r.BottomLeft.Y <= otr.Y &&
		rtr.Y >= o.BottomLeft.Y
}

// DistanceTo returns the Euclidean distance between the room centers, rounded
func (r Room) DistanceTo(o Room) int {
	a, b := r.Center(), o.Center()
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// Contains reports whether p lies on the room rectangle, walls included
func (r Room) Contains(p Point) bool {
	tr := r.TopRight()
	return p.X >= r.BottomLeft.X && p.X < tr.X && p.Y >= r.BottomLeft.Y && p.Y < tr.Y
}

// InteriorContains reports whether p lies on the room floor
func (r Room) InteriorContains(p Point) bool {
	tr := r.TopRight()
	return p.X > r.BottomLeft.X && p.X < tr.X-1 && p.Y > r.BottomLeft.Y && p.Y < tr.Y-1
}

// IsWallPosition reports whether p lies on the room's wall ring
func (r Room) IsWallPosition(p Point) bool {
	return r.Contains(p) && !r.InteriorContains(p)
}

// RandomInteriorPoint draws a floor point of the room, x first then y
func (r Room) RandomInteriorPoint(rng *rand.Rand) Point {
	x := r.BottomLeft.X + 1 + rng.Intn(r.Width-2)
	y := r.BottomLeft.Y + 1 + rng.Intn(r.Height-2)
	return Point{X: x, Y: y}
}
