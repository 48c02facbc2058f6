package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Point is an integer grid coordinate. Equality is structural.
type Point = gruid.Point

// Manhattan returns the 4-directional distance between two points
func Manhattan(a, b Point) int {
	return paths.DistanceManhattan(a, b)
}

// Chebyshev returns the chessboard distance between two points
func Chebyshev(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
