package services

import (
	"fmt"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// nextStep is one chosen hop of the solution path.
type nextStep struct {
	object   string
	relation entities.Relation
}

// pickNext chooses the next hop from current. ok is false when every other
// person is blocked and no self relation is legal either.
func (g *generation) pickNext(current string) (step nextStep, ok bool) {
	type viable struct {
		name  string
		legal []entities.Relation
	}

	candidates := make([]string, len(g.names))
	copy(candidates, g.names)
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var options []viable
	for _, name := range candidates {
		if len(g.names) > 1 && name == current {
			continue
		}
		if legal := LegalRelations(current, name, g.pool, g.geometry, g.state); len(legal) > 0 {
			options = append(options, viable{name: name, legal: legal})
		}
	}
	if len(options) > 0 {
		choice := options[g.rng.Intn(len(options))]
		return nextStep{object: choice.name, relation: choice.legal[g.rng.Intn(len(choice.legal))]}, true
	}

	if self := LegalRelations(current, current, g.pool, g.geometry, g.state); len(self) > 0 {
		return nextStep{object: current, relation: self[g.rng.Intn(len(self))]}, true
	}
	return nextStep{}, false
}

// buildPath walks a random chain of at least max(minLength, 1) and at most
// two more steps, emitting each hop together with its mirror.
func (g *generation) buildPath(minLength int) (facts []entities.Fact, ids []string, err error) {
	length := max(minLength, 1) + g.rng.Intn(3)
	facts = make([]entities.Fact, 0, 2*length)
	ids = make([]string, 0, length)

	current := g.names[g.rng.Intn(len(g.names))]
	for i := 0; i < length; i++ {
		step, ok := g.pickNext(current)
		if !ok {
			return nil, nil, fmt.Errorf("%w: step %d from %s", ErrPathStalled, i+1, current)
		}
		pair := g.emitPair(current, step.relation, step.object)
		facts = append(facts, pair...)
		ids = append(ids, pair[0].ID)
		g.state.Register(current, step.relation, step.object)
		current = step.object
	}
	return facts, ids, nil
}
