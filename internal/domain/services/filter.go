package services

import "github.com/ersonp/kinpuzzle/internal/domain/entities"

// LegalRelations returns the relations of pool that may be asserted from
// subject to object right now, in pool order. It never mutates state.
func LegalRelations(
	subject, object string,
	pool []entities.Relation,
	geometry SpatialMap,
	state *PairState,
) []entities.Relation {
	existing := state.Committed(subject, object)
	spatial := geometry[OrderedPair{Subject: subject, Object: object}]

	var legal []entities.Relation
	for _, rel := range pool {
		if family := rel.Family(); family != entities.FamilyNone {
			if subject == object {
				continue
			}
			if existing != entities.FamilyNone && existing != family {
				continue
			}
		}
		if rel.IsSpatial() {
			if spatial[rel] {
				legal = append(legal, rel)
			}
			continue
		}
		legal = append(legal, rel)
	}
	return legal
}
