// Package maprange detects map iteration whose order can leak into results.
package maprange

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports ranges over maps that are not followed by a sort in the
// same function. Test files are skipped.
var Analyzer = &analysis.Analyzer{
	Name: "maprange",
	Doc:  "detects range over a map without a following sort",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			var body *ast.BlockStmt
			switch fn := n.(type) {
			case *ast.FuncDecl:
				body = fn.Body
			case *ast.FuncLit:
				body = fn.Body
			}
			if body == nil {
				return true
			}
			checkBody(pass, body)
			return true
		})
	}

	return nil, nil
}

// checkBody inspects one function body. Nested function literals are
// checked on their own.
func checkBody(pass *analysis.Pass, body *ast.BlockStmt) {
	var ranges []*ast.RangeStmt
	var sorts []token.Pos

	ast.Inspect(body, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.RangeStmt:
			if isMap(pass, node.X) {
				ranges = append(ranges, node)
			}
		case *ast.CallExpr:
			if isSortCall(pass, node) {
				sorts = append(sorts, node.Pos())
			}
		}
		return true
	})

	for _, r := range ranges {
		if !sortedAfter(r.End(), sorts) {
			pass.Reportf(r.Pos(),
				"range over map without a following sort - iteration order is random")
		}
	}
}

func isMap(pass *analysis.Pass, expr ast.Expr) bool {
	t := pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return false
	}
	_, ok := t.Underlying().(*types.Map)
	return ok
}

func isSortCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return false
	}

	switch pkgName.Imported().Path() {
	case "sort":
		return true
	case "slices":
		return strings.HasPrefix(sel.Sel.Name, "Sort")
	}
	return false
}

func sortedAfter(end token.Pos, sorts []token.Pos) bool {
	for _, pos := range sorts {
		if pos > end {
			return true
		}
	}
	return false
}
