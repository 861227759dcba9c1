// Package analyzers provides all custom static analyzers for kinpuzzle.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/kinpuzzle/tools/puzzle-lint/analyzers/globalrand"
	"github.com/ersonp/kinpuzzle/tools/puzzle-lint/analyzers/maprange"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		globalrand.Analyzer,
		maprange.Analyzer,
	}
}
