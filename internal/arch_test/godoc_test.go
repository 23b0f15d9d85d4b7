package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// documented lists the packages whose exported API must carry doc comments.
var documented = []string{"internal/dag", "internal/plan"}

// TestExportedSymbolsHaveGoDoc checks that every exported type, function,
// method, var and const has a doc comment starting with its name. A doc
// comment on a grouped var or const block covers its members.
func TestExportedSymbolsHaveGoDoc(t *testing.T) {
	t.Parallel()

	for _, pkg := range documented {
		pkg := pkg
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			for _, path := range sourceFiles(t, filepath.Join(repoRoot(t), filepath.FromSlash(pkg))) {
				for _, missing := range undocumented(t, path) {
					t.Errorf("%s: %s has no doc comment starting with its name", filepath.Base(path), missing)
				}
			}
		})
	}
}

func undocumented(t *testing.T, path string) []string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}

	var out []string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if !d.Name.IsExported() || (d.Recv != nil && !exportedReceiver(d.Recv)) {
				continue
			}
			if !startsWithName(d.Doc, d.Name.Name) {
				out = append(out, d.Name.Name)
			}
		case *ast.GenDecl:
			grouped := d.Lparen.IsValid() && d.Doc != nil
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					if s.Name.IsExported() && !startsWithName(s.Doc, s.Name.Name) && !startsWithName(d.Doc, s.Name.Name) {
						out = append(out, s.Name.Name)
					}
				case *ast.ValueSpec:
					for _, name := range s.Names {
						if name.IsExported() && !grouped && !startsWithName(s.Doc, name.Name) && !startsWithName(d.Doc, name.Name) {
							out = append(out, name.Name)
						}
					}
				}
			}
		}
	}
	return out
}

func startsWithName(doc *ast.CommentGroup, name string) bool {
	if doc == nil {
		return false
	}
	text := doc.Text()
	return strings.HasPrefix(text, name+" ") || strings.HasPrefix(text, "A "+name+" ") ||
		strings.HasPrefix(text, "An "+name+" ")
}

func exportedReceiver(recv *ast.FieldList) bool {
	if len(recv.List) == 0 {
		return false
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if idx, ok := expr.(*ast.IndexExpr); ok {
		expr = idx.X
	}
	ident, ok := expr.(*ast.Ident)
	return ok && ident.IsExported()
}
