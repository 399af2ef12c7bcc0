package world

// Direction is one of the four grid neighbours of a cell
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// directionDeltas holds the row and column offset of each direction
var directionDeltas = [...]Point{
	North: {Row: -1},
	East:  {Col: 1},
	South: {Row: 1},
	West:  {Col: -1},
}

// AllDirections returns the directions in clockwise order from North
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the name of the direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid reports whether d is one of the four directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the row and column offsets for this direction.
// Invalid directions do not move.
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	delta := directionDeltas[d]
	return delta.Row, delta.Col
}

// DirectionBetween returns the direction leading from a to an adjacent point b.
// The second result is false when the points are not 4-neighbours.
func DirectionBetween(a, b Point) (Direction, bool) {
	for _, dir := range AllDirections() {
		if a.Step(dir) == b {
			return dir, true
		}
	}
	return North, false
}
