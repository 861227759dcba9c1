// Package globalrand detects use of the package-level math/rand source.
package globalrand

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects calls like rand.Intn that draw from the shared global source.
var Analyzer = &analysis.Analyzer{
	Name:     "globalrand",
	Doc:      "detects calls to package-level math/rand functions; pass a seeded *rand.Rand instead",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var randPackages = map[string]bool{
	"math/rand":    true,
	"math/rand/v2": true,
}

// Constructors build a private source and are allowed.
var allowed = map[string]bool{
	"New":        true,
	"NewSource":  true,
	"NewZipf":    true,
	"NewPCG":     true,
	"NewChaCha8": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}

		pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok || !randPackages[pkgName.Imported().Path()] {
			return
		}

		if allowed[sel.Sel.Name] {
			return
		}

		pass.Reportf(call.Pos(),
			"%s.%s uses the global random source - draw from a seeded *rand.Rand",
			ident.Name, sel.Sel.Name)
	})

	return nil, nil
}
