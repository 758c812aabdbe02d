package bedges

// Direction identifies one of the eight directed edge features.
//
// A south edge starts at high intensity and drops when stepping south, which makes
// it the lower boundary of a bright object on a dark background.
type Direction int

const (
	South Direction = iota
	SouthEast
	East
	NorthEast
	North
	NorthWest
	West
	SouthWest
)

// NumDirections is the number of feature planes in a volume.
const NumDirections = 8

// Directions lists all directions in plane order.
var Directions = [NumDirections]Direction{South, SouthEast, East, NorthEast, North, NorthWest, West, SouthWest}

var directionNames = [NumDirections]string{"S", "SE", "E", "NE", "N", "NW", "W", "SW"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "invalid"
	}
	return directionNames[d]
}

// step is a (row, col) offset.
type step struct {
	dr, dc int
}

// edgeSteps holds, per direction, the step v from the pixel z to its partner
// y = z + v and the perpendicular step w used by the flanking comparisons.
// Rows grow southward, columns grow eastward.
var edgeSteps = [NumDirections]struct {
	v, w step
}{
	South:     {v: step{1, 0}, w: step{0, 1}},
	SouthEast: {v: step{1, 1}, w: step{1, -1}},
	East:      {v: step{0, 1}, w: step{1, 0}},
	NorthEast: {v: step{-1, 1}, w: step{1, 1}},
	North:     {v: step{-1, 0}, w: step{0, 1}},
	NorthWest: {v: step{-1, -1}, w: step{1, -1}},
	West:      {v: step{0, -1}, w: step{1, 0}},
	SouthWest: {v: step{1, -1}, w: step{1, 1}},
}
