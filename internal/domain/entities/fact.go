// Package entities contains core domain data structures.
package entities

import "fmt"

// Fact is a directed, labeled relation between two people.
type Fact struct {
	ID       string   `json:"id" yaml:"id"`
	Subject  string   `json:"subject" yaml:"subject"`
	Relation Relation `json:"relation" yaml:"relation"`
	Object   string   `json:"object" yaml:"object"`
}

// Triple identifies a fact by its content, ignoring the ID.
type Triple struct {
	Subject  string
	Relation Relation
	Object   string
}

// Triple returns the content key of f.
func (f Fact) Triple() Triple {
	return Triple{Subject: f.Subject, Relation: f.Relation, Object: f.Object}
}

// String renders the triple as "subject:relation -> object".
func (t Triple) String() string {
	return fmt.Sprintf("%s:%s -> %s", t.Subject, t.Relation, t.Object)
}

// Less orders triples by subject, then relation, then object.
func (t Triple) Less(o Triple) bool {
	if t.Subject != o.Subject {
		return t.Subject < o.Subject
	}
	if t.Relation != o.Relation {
		return t.Relation < o.Relation
	}
	return t.Object < o.Object
}
