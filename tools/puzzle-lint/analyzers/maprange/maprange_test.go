package maprange_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/ersonp/kinpuzzle/tools/puzzle-lint/analyzers/maprange"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, maprange.Analyzer, "a")
}
