package analyze

import (
	"go/ast"
	"go/token"
	"strings"

	"bitenum-generator/internal/config"
	"bitenum-generator/internal/diagnostic"
)

// Extract finds the annotated types of pkg and collects their variants.
// Problems that make a declaration unusable are recorded in diags and the
// declaration is skipped; misplaced directives are reported as warnings.
func Extract(pkg *Package, diags *diagnostic.Diagnostics) []*EnumDescriptor {
	var (
		enums  []*EnumDescriptor
		byName = make(map[string]*EnumDescriptor)
	)

	for _, f := range pkg.Files {
		for _, decl := range f.Syntax.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					warnIgnored(pkg, d.Doc, diags)
					continue
				}

				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}

					doc := ts.Doc
					if doc == nil && len(d.Specs) == 1 {
						doc = d.Doc
					}

					desc := describe(pkg, f, ts, doc, diags)
					if desc == nil {
						continue
					}

					if prev, dup := byName[desc.Name]; dup {
						diags.Add(diagnostic.Errorf(diagnostic.CodeInvalidDirective, desc.Pos, desc.Name, "",
							"type is annotated more than once, first at %s", prev.Pos))

						continue
					}

					byName[desc.Name] = desc
					enums = append(enums, desc)
				}
			case *ast.FuncDecl:
				warnIgnored(pkg, d.Doc, diags)
			}
		}
	}

	for _, f := range pkg.Files {
		collectVariants(pkg, f, byName)
	}

	return enums
}

// describe builds the descriptor of ts, nil when ts is not annotated or the
// directive is given more than once.
func describe(pkg *Package, f *File, ts *ast.TypeSpec, doc *ast.CommentGroup, diags *diagnostic.Diagnostics) *EnumDescriptor {
	directives, lines := splitDoc(doc)
	if len(directives) == 0 {
		return nil
	}

	pos := pkg.Fset.Position(ts.Name.Pos())
	if len(directives) > 1 {
		diags.Add(diagnostic.Errorf(diagnostic.CodeInvalidDirective, pos, ts.Name.Name, "",
			"%s must only be given once", config.Directive))

		return nil
	}

	return &EnumDescriptor{
		Name:       ts.Name.Name,
		Exported:   ts.Name.IsExported(),
		Underlying: exprString(ts.Type),
		Alias:      ts.Assign.IsValid(),
		Generic:    ts.TypeParams != nil && len(ts.TypeParams.List) > 0,
		Doc:        lines,
		Directive:  directives[0],
		Definition: f.Definition,
		Marker:     f.Marker,
		Package:    pkg.Name,
		PkgPath:    pkg.Path,
		Dir:        pkg.Dir,
		Pos:        pos,
	}
}

// splitDoc separates directive arguments from the remaining comment lines,
// which are kept verbatim.
func splitDoc(doc *ast.CommentGroup) (directives, lines []string) {
	if doc == nil {
		return nil, nil
	}

	for _, c := range doc.List {
		if args, ok := config.ParseDirective(c.Text); ok {
			directives = append(directives, args)
			continue
		}

		lines = append(lines, c.Text)
	}

	return directives, lines
}

func warnIgnored(pkg *Package, doc *ast.CommentGroup, diags *diagnostic.Diagnostics) {
	if doc == nil {
		return
	}

	for _, c := range doc.List {
		if _, ok := config.ParseDirective(c.Text); ok {
			diags.AddWarning(diagnostic.CodeIgnoredDirective, pkg.Fset.Position(c.Pos()), "",
				"%s only applies to type declarations", config.Directive)
		}
	}
}

// collectVariants appends the constants of f typed as one of enums to their
// descriptor. Constants relying on implicit repetition get a nil Expr.
func collectVariants(pkg *Package, f *File, enums map[string]*EnumDescriptor) {
	var markers []string
	if f.Marker != "" {
		markers = []string{f.Marker}
	}

	for _, decl := range f.Syntax.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		var prevType ast.Expr

		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			typ := vs.Type
			switch {
			case typ == nil && len(vs.Values) == 0:
				typ = prevType
			default:
				prevType = typ
			}

			doc := vs.Doc
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}

			for i, name := range vs.Names {
				if name.Name == "_" {
					continue
				}

				var expr ast.Expr
				if i < len(vs.Values) {
					expr = vs.Values[i]
				}

				desc := enumOf(enums, typ, &expr)
				if desc == nil {
					continue
				}

				desc.Variants = append(desc.Variants, Variant{
					Name:       name.Name,
					Expr:       expr,
					Markers:    markers,
					Definition: f.Definition,
					Doc:        commentLines(doc),
					Comment:    strings.Join(commentLines(vs.Comment), " "),
					Pos:        pkg.Fset.Position(name.Pos()),
				})
			}
		}
	}
}

// enumOf returns the descriptor a constant belongs to. Besides "A Mode = 1",
// the conversion form "A = Mode(1)" is recognised; expr is then replaced by
// the converted operand.
func enumOf(enums map[string]*EnumDescriptor, typ ast.Expr, expr *ast.Expr) *EnumDescriptor {
	if id, ok := typ.(*ast.Ident); ok {
		return enums[id.Name]
	}

	if typ != nil {
		return nil
	}

	call, ok := (*expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return nil
	}

	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return nil
	}

	desc := enums[id.Name]
	if desc != nil {
		*expr = call.Args[0]
	}

	return desc
}

func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}

	lines := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		lines = append(lines, c.Text)
	}

	return lines
}
