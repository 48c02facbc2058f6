package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction.
// The y axis grows northwards, so North is +1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Step returns the point one cell away from p in this direction
func (d Direction) Step(p Point) Point {
	dx, dy := d.Delta()
	return p.Add(Point{X: dx, Y: dy})
}

// Symbol returns the movement symbol for this direction (w/d/s/a)
func (d Direction) Symbol() rune {
	switch d {
	case North:
		return 'w'
	case East:
		return 'd'
	case South:
		return 's'
	case West:
		return 'a'
	default:
		return 0
	}
}

// DirectionFromSymbol maps a movement symbol to its direction.
// Upper case symbols are accepted.
func DirectionFromSymbol(r rune) (Direction, bool) {
	switch r {
	case 'w', 'W':
		return North, true
	case 'd', 'D':
		return East, true
	case 's', 'S':
		return South, true
	case 'a', 'A':
		return West, true
	default:
		return -1, false
	}
}

// DirectionBetween returns the direction of a single orthogonal step from a to b
func DirectionBetween(a, b Point) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.Step(a) == b {
			return d, true
		}
	}
	return -1, false
}
