package entities

// SolutionStep is one fact of the solution path in readable form.
type SolutionStep struct {
	FactID   string   `json:"fact_id" yaml:"fact_id"`
	Subject  string   `json:"subject" yaml:"subject"`
	Relation Relation `json:"relation" yaml:"relation"`
	Object   string   `json:"object" yaml:"object"`
}

// String renders the step as "subject:relation -> object".
func (s SolutionStep) String() string {
	return Triple{Subject: s.Subject, Relation: s.Relation, Object: s.Object}.String()
}

// Puzzle is the output of one generation run. It is never mutated after
// construction.
type Puzzle struct {
	Seed       int64           `json:"seed" yaml:"seed"`
	Profile    RelationProfile `json:"profile" yaml:"profile"`
	Difficulty Difficulty      `json:"difficulty" yaml:"difficulty"`
	Relations  []Relation      `json:"relations" yaml:"relations"`
	Names      []string        `json:"names" yaml:"names"`
	Facts      []Fact          `json:"facts" yaml:"facts"`
	Seating    Seating         `json:"seating" yaml:"seating"`
	// SolutionPath holds fact IDs in path order; every ID resolves in Facts.
	SolutionPath    []string       `json:"solution_path" yaml:"solution_path"`
	Graph           []string       `json:"graph" yaml:"graph"`
	SolutionSummary []SolutionStep `json:"solution_summary" yaml:"solution_summary"`
	Dense           bool           `json:"dense" yaml:"dense"`
}

// FactByID returns the fact with the given ID.
func (p *Puzzle) FactByID(id string) (Fact, bool) {
	for _, f := range p.Facts {
		if f.ID == id {
			return f, true
		}
	}
	return Fact{}, false
}
