// puzzle-lint checks that puzzle generation stays reproducible from its seed.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/kinpuzzle/tools/puzzle-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
