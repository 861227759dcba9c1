package services

import (
	"sort"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// DedupeFacts drops facts whose triple already appeared, keeping the first
// occurrence. The returned map points every input ID at the ID that survived
// for its triple.
func DedupeFacts(facts []entities.Fact) ([]entities.Fact, map[string]string) {
	out := make([]entities.Fact, 0, len(facts))
	kept := make(map[entities.Triple]string, len(facts))
	alias := make(map[string]string, len(facts))
	for _, f := range facts {
		key := f.Triple()
		if id, ok := kept[key]; ok {
			alias[f.ID] = id
			continue
		}
		kept[key] = f.ID
		alias[f.ID] = f.ID
		out = append(out, f)
	}
	return out, alias
}

// CanonicalTriple expresses t in its rendering direction: backward labels
// become their forward mirror, and symmetric relations order the pair.
func CanonicalTriple(t entities.Triple) entities.Triple {
	rel, swap := t.Relation.Canonical()
	subj, obj := t.Subject, t.Object
	if swap {
		subj, obj = obj, subj
	}
	if rel.IsSymmetric() && subj > obj {
		subj, obj = obj, subj
	}
	return entities.Triple{Subject: subj, Relation: rel, Object: obj}
}

// CanonicalGraph renders facts as sorted, duplicate-free
// "subject:relation -> object" lines.
func CanonicalGraph(facts []entities.Fact) []string {
	seen := make(map[entities.Triple]bool, len(facts))
	triples := make([]entities.Triple, 0, len(facts))
	for _, f := range facts {
		t := CanonicalTriple(f.Triple())
		if seen[t] {
			continue
		}
		seen[t] = true
		triples = append(triples, t)
	}
	sort.Slice(triples, func(i, j int) bool { return triples[i].Less(triples[j]) })

	lines := make([]string, len(triples))
	for i, t := range triples {
		lines[i] = t.String()
	}
	return lines
}

// solutionSummary resolves each path ID into a readable step.
func solutionSummary(facts []entities.Fact, path []string) []entities.SolutionStep {
	byID := make(map[string]entities.Fact, len(facts))
	for _, f := range facts {
		byID[f.ID] = f
	}

	steps := make([]entities.SolutionStep, 0, len(path))
	for _, id := range path {
		f, ok := byID[id]
		if !ok {
			continue
		}
		steps = append(steps, entities.SolutionStep{
			FactID:   f.ID,
			Subject:  f.Subject,
			Relation: f.Relation,
			Object:   f.Object,
		})
	}
	return steps
}
