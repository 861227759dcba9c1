package services

import "github.com/ersonp/kinpuzzle/internal/domain/entities"

// validTriples enumerates every triple currently legal across all ordered
// pairs. Self pairs are only considered when a single person exists.
func (g *generation) validTriples() []entities.Triple {
	var triples []entities.Triple
	for _, subj := range g.names {
		for _, obj := range g.names {
			if len(g.names) > 1 && subj == obj {
				continue
			}
			for _, rel := range LegalRelations(subj, obj, g.pool, g.geometry, g.state) {
				triples = append(triples, entities.Triple{Subject: subj, Relation: rel, Object: obj})
			}
		}
	}
	return triples
}

// sampleExtras pads the fact set with between max(0, n-2) and n+2 mirrored
// pairs that are not part of the solution. Each draw is uniform over the
// currently valid triples, so pairs with more legal relations are drawn more
// often. Sampling stops early once nothing is legal.
func (g *generation) sampleExtras() []entities.Fact {
	n := len(g.names)
	low, high := max(0, n-2), n+2
	count := low + g.rng.Intn(high-low+1)

	var facts []entities.Fact
	for i := 0; i < count; i++ {
		triples := g.validTriples()
		if len(triples) == 0 {
			break
		}
		t := triples[g.rng.Intn(len(triples))]
		facts = append(facts, g.emitPair(t.Subject, t.Relation, t.Object)...)
		g.state.Register(t.Subject, t.Relation, t.Object)
	}
	return facts
}

// countLegalTriples counts the distinct triples available to a fresh
// generation. Each ordered pair registers all of its legal family relations on
// a scratch tracker before the next pair is visited, so later pairs see the
// last family committed. Self pairs are skipped when there is more than one
// person and the pool holds spatial relations.
func countLegalTriples(names []string, pool []entities.Relation, geometry SpatialMap) int {
	hasSpatial := false
	for _, rel := range pool {
		if rel.IsSpatial() {
			hasSpatial = true
			break
		}
	}

	scratch := NewPairState()
	seen := make(map[entities.Triple]bool)
	for _, subj := range names {
		for _, obj := range names {
			if len(names) > 1 && subj == obj && hasSpatial {
				continue
			}
			legal := LegalRelations(subj, obj, pool, geometry, scratch)
			for _, rel := range legal {
				seen[entities.Triple{Subject: subj, Relation: rel, Object: obj}] = true
			}
			for _, rel := range legal {
				scratch.Register(subj, rel, obj)
			}
		}
	}
	return len(seen)
}
