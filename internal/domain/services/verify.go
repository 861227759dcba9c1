package services

import (
	"fmt"
	"slices"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// Checks reported by VerifyPuzzle.
const (
	CheckRelation = "relation"
	CheckSeating  = "seating"
	CheckFamily   = "family"
	CheckSpatial  = "spatial"
	CheckMirror   = "mirror"
	CheckPath     = "path"
	CheckGraph    = "graph"
)

// Violation is a broken puzzle invariant.
type Violation struct {
	Check   string `json:"check"`
	Message string `json:"message"`
}

// VerifyPuzzle re-checks the invariants every generated puzzle must satisfy.
// It returns nil for a consistent puzzle.
func VerifyPuzzle(p *entities.Puzzle) []Violation {
	var out []Violation
	report := func(check, format string, args ...any) {
		out = append(out, Violation{Check: check, Message: fmt.Sprintf(format, args...)})
	}

	seated := make(map[string]int, len(p.Names))
	for _, pos := range p.Seating.Positions() {
		if name, ok := p.Seating.Occupant(pos); ok {
			seated[name]++
		}
	}
	for _, name := range p.Names {
		if seated[name] != 1 {
			report(CheckSeating, "%s occupies %d seats", name, seated[name])
		}
	}

	geometry := ResolveGeometry(p.Seating)
	present := make(map[entities.Triple]bool, len(p.Facts))
	family := make(map[pairKey]entities.FamilyCategory)
	for _, f := range p.Facts {
		present[f.Triple()] = true
		if !f.Relation.IsValid() {
			report(CheckRelation, "fact %s uses unknown relation %q", f.ID, f.Relation)
			continue
		}
		if fc := f.Relation.Family(); fc != entities.FamilyNone {
			if f.Subject == f.Object {
				report(CheckFamily, "fact %s relates %s to itself as %s", f.ID, f.Subject, f.Relation)
			}
			key := newPairKey(f.Subject, f.Object)
			if prev, ok := family[key]; ok && prev != fc {
				report(CheckFamily, "%s and %s are both %s and %s", key.A, key.B, prev, fc)
			} else if !ok {
				family[key] = fc
			}
		}
		if f.Relation.IsSpatial() && !geometry.Has(f.Subject, f.Object, f.Relation) {
			report(CheckSpatial, "fact %s (%s) does not match the seating", f.ID, f.Triple())
		}
	}

	for _, f := range p.Facts {
		inv, ok := f.Relation.Inverse()
		if !ok || f.Subject == f.Object {
			continue
		}
		mirror := entities.Triple{Subject: f.Object, Relation: inv, Object: f.Subject}
		if !present[mirror] {
			report(CheckMirror, "fact %s (%s) has no mirror %s", f.ID, f.Triple(), mirror)
		}
	}

	for _, id := range p.SolutionPath {
		if _, ok := p.FactByID(id); !ok {
			report(CheckPath, "solution path references unknown fact %s", id)
		}
	}
	if len(p.SolutionSummary) != len(p.SolutionPath) {
		report(CheckPath, "solution summary has %d steps for a path of %d", len(p.SolutionSummary), len(p.SolutionPath))
	}

	if !slices.Equal(p.Graph, CanonicalGraph(p.Facts)) {
		report(CheckGraph, "graph lines are not the canonical rendering of the facts")
	}

	return out
}
