package services

import "github.com/ersonp/kinpuzzle/internal/domain/entities"

// pairKey identifies an unordered pair of people. A is never greater than B.
type pairKey struct {
	A string
	B string
}

func newPairKey(x, y string) pairKey {
	if y < x {
		x, y = y, x
	}
	return pairKey{A: x, B: y}
}

// PairState tracks the family category committed for each pair of people
// during one generation run. State only grows.
type PairState struct {
	committed map[pairKey]entities.FamilyCategory
}

// NewPairState creates an empty tracker.
func NewPairState() *PairState {
	return &PairState{committed: make(map[pairKey]entities.FamilyCategory)}
}

// Register commits rel's family category for the pair when rel is family
// exclusive and the pair is not a self pair. Callers check legality first.
func (s *PairState) Register(subject string, rel entities.Relation, object string) {
	family := rel.Family()
	if family == entities.FamilyNone || subject == object {
		return
	}
	s.committed[newPairKey(subject, object)] = family
}

// Committed returns the family category held by the pair, or FamilyNone.
func (s *PairState) Committed(a, b string) entities.FamilyCategory {
	return s.committed[newPairKey(a, b)]
}
