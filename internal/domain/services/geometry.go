package services

import "github.com/ersonp/kinpuzzle/internal/domain/entities"

// OrderedPair is a directed (subject, object) pair of people.
type OrderedPair struct {
	Subject string
	Object  string
}

// SpatialMap holds, for every ordered pair of seated people, the spatial
// relations that hold from subject to object. Missing pairs have none.
type SpatialMap map[OrderedPair]map[entities.Relation]bool

// Has reports whether rel holds from subject to object.
func (m SpatialMap) Has(subject, object string, rel entities.Relation) bool {
	return m[OrderedPair{Subject: subject, Object: object}][rel]
}

func (m SpatialMap) add(subject, object string, rels ...entities.Relation) {
	if subject == object {
		return
	}
	key := OrderedPair{Subject: subject, Object: object}
	set, ok := m[key]
	if !ok {
		set = make(map[entities.Relation]bool, len(rels))
		m[key] = set
	}
	for _, rel := range rels {
		set[rel] = true
	}
}

// ResolveGeometry derives every spatial relation implied by the seating.
// Empty seats count toward distances but never appear as endpoints.
func ResolveGeometry(seating entities.Seating) SpatialMap {
	m := make(SpatialMap)
	if len(seating.Seats) == 0 {
		return m
	}

	switch seating.Kind {
	case entities.SeatingLinear:
		resolveLinear(seating, m)
	case entities.SeatingCircular:
		resolveCircular(seating, m)
	}
	return m
}

func resolveLinear(seating entities.Seating, m SpatialMap) {
	positions := seating.Positions()
	for _, i := range positions {
		subj, ok := seating.Occupant(i)
		if !ok {
			continue
		}
		for _, j := range positions {
			obj, ok := seating.Occupant(j)
			if !ok || i == j {
				continue
			}
			if i < j {
				m.add(subj, obj, entities.RelationLeftOf)
			} else {
				m.add(subj, obj, entities.RelationRightOf)
			}
			switch j - i {
			case 1, -1:
				m.add(subj, obj, entities.RelationNextTo)
			case 2:
				m.add(subj, obj, entities.RelationTwoLeftOf)
			case -2:
				m.add(subj, obj, entities.RelationTwoRightOf)
			}
		}
	}
}

// resolveCircular treats ascending seat order as clockwise. Slots are indexed
// by rank, so gaps in seat numbering do not stretch the ring.
func resolveCircular(seating entities.Seating, m SpatialMap) {
	positions := seating.Positions()
	n := len(positions)
	at := func(slot int) (string, bool) {
		return seating.Occupant(positions[((slot%n)+n)%n])
	}

	for p := range positions {
		obj, ok := at(p)
		if !ok {
			continue
		}
		if subj, ok := at(p - 1); ok {
			m.add(subj, obj, entities.RelationLeftOf, entities.RelationNextTo, entities.RelationCounterclockwiseOf)
		}
		if subj, ok := at(p + 1); ok {
			m.add(subj, obj, entities.RelationRightOf, entities.RelationNextTo, entities.RelationClockwiseOf)
		}
		if subj, ok := at(p - 2); ok {
			m.add(subj, obj, entities.RelationTwoLeftOf)
		}
		if subj, ok := at(p + 2); ok {
			m.add(subj, obj, entities.RelationTwoRightOf)
		}
		if n%2 == 0 {
			if subj, ok := at(p + n/2); ok {
				m.add(subj, obj, entities.RelationAcrossFrom)
			}
		}
	}
}
