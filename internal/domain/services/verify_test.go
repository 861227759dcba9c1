package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

func validPuzzle() *entities.Puzzle {
	facts := []entities.Fact{
		fact("f1", "A", entities.RelationParentOf, "B"),
		fact("f2", "B", entities.RelationChildOf, "A"),
		fact("f3", "A", entities.RelationLeftOf, "B"),
		fact("f4", "B", entities.RelationRightOf, "A"),
	}
	return &entities.Puzzle{
		Names:        []string{"A", "B"},
		Facts:        facts,
		Seating:      entities.Seating{Kind: entities.SeatingLinear, Seats: map[int]string{1: "A", 2: "B"}},
		SolutionPath: []string{"f1"},
		Graph:        CanonicalGraph(facts),
		SolutionSummary: []entities.SolutionStep{
			{FactID: "f1", Subject: "A", Relation: entities.RelationParentOf, Object: "B"},
		},
	}
}

func checksOf(vs []Violation) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Check)
	}
	return out
}

func TestVerifyPuzzle_Valid(t *testing.T) {
	assert.Empty(t, VerifyPuzzle(validPuzzle()))
}

func TestVerifyPuzzle_Violations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *entities.Puzzle)
		expected string
	}{
		{
			name: "family contradiction",
			mutate: func(p *entities.Puzzle) {
				p.Facts = append(p.Facts,
					fact("f5", "A", entities.RelationSpouseOf, "B"),
					fact("f6", "B", entities.RelationSpouseOf, "A"))
				p.Graph = CanonicalGraph(p.Facts)
			},
			expected: CheckFamily,
		},
		{
			name: "spatial fact against seating",
			mutate: func(p *entities.Puzzle) {
				p.Facts = append(p.Facts,
					fact("f5", "A", entities.RelationAcrossFrom, "B"),
					fact("f6", "B", entities.RelationAcrossFrom, "A"))
				p.Graph = CanonicalGraph(p.Facts)
			},
			expected: CheckSpatial,
		},
		{
			name: "missing mirror",
			mutate: func(p *entities.Puzzle) {
				p.Facts = p.Facts[:3]
				p.Graph = CanonicalGraph(p.Facts)
			},
			expected: CheckMirror,
		},
		{
			name:     "dangling path id",
			mutate:   func(p *entities.Puzzle) { p.SolutionPath = []string{"nope"} },
			expected: CheckPath,
		},
		{
			name:     "summary length mismatch",
			mutate:   func(p *entities.Puzzle) { p.SolutionSummary = nil },
			expected: CheckPath,
		},
		{
			name:     "graph out of order",
			mutate:   func(p *entities.Puzzle) { p.Graph[0], p.Graph[1] = p.Graph[1], p.Graph[0] },
			expected: CheckGraph,
		},
		{
			name:     "person not seated",
			mutate:   func(p *entities.Puzzle) { p.Seating.Seats[2] = entities.EmptySeat },
			expected: CheckSeating,
		},
		{
			name: "unknown relation",
			mutate: func(p *entities.Puzzle) {
				p.Facts = append(p.Facts, fact("f5", "A", "admires", "A"))
			},
			expected: CheckRelation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPuzzle()
			tt.mutate(p)
			assert.Contains(t, checksOf(VerifyPuzzle(p)), tt.expected)
		})
	}
}
