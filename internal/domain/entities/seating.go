package entities

import "sort"

// SeatingKind is the physical layout people are seated in.
type SeatingKind string

const (
	SeatingLinear   SeatingKind = "linear"
	SeatingCircular SeatingKind = "circular"
)

// SeatingKinds lists the supported layouts in a stable order.
var SeatingKinds = []SeatingKind{SeatingLinear, SeatingCircular}

// EmptySeat marks a seat that pads the layout without holding a person.
const EmptySeat = "(empty)"

// IsValid reports whether k is a supported layout.
func (k SeatingKind) IsValid() bool {
	return k == SeatingLinear || k == SeatingCircular
}

// Seating maps 1-based seat positions to a person's name or EmptySeat.
type Seating struct {
	Kind  SeatingKind    `json:"kind" yaml:"kind"`
	Seats map[int]string `json:"seats" yaml:"seats"`
}

// Positions returns every seat position in ascending order, empty seats
// included.
func (s Seating) Positions() []int {
	positions := make([]int, 0, len(s.Seats))
	for pos := range s.Seats {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// Occupant returns the person at pos, or false when the seat is empty or
// does not exist.
func (s Seating) Occupant(pos int) (string, bool) {
	name, ok := s.Seats[pos]
	if !ok || name == EmptySeat {
		return "", false
	}
	return name, true
}
