package analyze

import (
	"go/ast"
	"go/build/constraint"
	"go/types"
	"path/filepath"
	"strings"
)

// Operating systems and architectures recognized in file name suffixes, as
// listed by the go command.
var (
	knownOS = map[string]bool{
		"aix": true, "android": true, "darwin": true, "dragonfly": true,
		"freebsd": true, "hurd": true, "illumos": true, "ios": true,
		"js": true, "linux": true, "nacl": true, "netbsd": true,
		"openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
		"windows": true, "zos": true,
	}
	knownArch = map[string]bool{
		"386": true, "amd64": true, "amd64p32": true, "arm": true,
		"armbe": true, "arm64": true, "arm64be": true, "loong64": true,
		"mips": true, "mipsle": true, "mips64": true, "mips64le": true,
		"mips64p32": true, "mips64p32le": true, "ppc": true, "ppc64": true,
		"ppc64le": true, "riscv": true, "riscv64": true, "s390": true,
		"s390x": true, "sparc": true, "sparc64": true, "wasm": true,
	}
)

// fileConstraint returns the build constraint of f, nil when it has none.
// A //go:build line takes precedence over legacy // +build lines.
func fileConstraint(f *ast.File) (constraint.Expr, error) {
	var plus constraint.Expr

	for _, cg := range f.Comments {
		if cg.Pos() >= f.Package {
			break
		}

		for _, c := range cg.List {
			switch {
			case constraint.IsGoBuild(c.Text):
				return constraint.Parse(c.Text)
			case constraint.IsPlusBuild(c.Text):
				x, err := constraint.Parse(c.Text)
				if err != nil {
					return nil, err
				}

				plus = and(plus, x)
			}
		}
	}

	return plus, nil
}

// fileNameConstraint returns the implicit constraint of a _GOOS, _GOARCH or
// _GOOS_GOARCH file name suffix, nil when there is none.
func fileNameConstraint(path string) constraint.Expr {
	name, _, _ := strings.Cut(filepath.Base(path), ".")

	i := strings.Index(name, "_")
	if i < 0 {
		return nil
	}

	l := strings.Split(name[i:], "_")
	if n := len(l); n > 0 && l[n-1] == "test" {
		l = l[:n-1]
	}

	n := len(l)
	switch {
	case n >= 2 && knownOS[l[n-2]] && knownArch[l[n-1]]:
		return &constraint.AndExpr{X: &constraint.TagExpr{Tag: l[n-2]}, Y: &constraint.TagExpr{Tag: l[n-1]}}
	case n >= 1 && (knownOS[l[n-1]] || knownArch[l[n-1]]):
		return &constraint.TagExpr{Tag: l[n-1]}
	}

	return nil
}

// withFileName adds the file name constraint of path to x, leaving out tags
// x already requires.
func withFileName(x constraint.Expr, path string) constraint.Expr {
	var add func(constraint.Expr)

	add = func(y constraint.Expr) {
		switch e := y.(type) {
		case *constraint.AndExpr:
			add(e.X)
			add(e.Y)
		case *constraint.TagExpr:
			if !requires(x, e.Tag) {
				x = and(x, e)
			}
		}
	}

	if y := fileNameConstraint(path); y != nil {
		add(y)
	}

	return x
}

// requires reports whether tag is a conjunct of x.
func requires(x constraint.Expr, tag string) bool {
	switch e := x.(type) {
	case *constraint.TagExpr:
		return e.Tag == tag
	case *constraint.AndExpr:
		return requires(e.X, tag) || requires(e.Y, tag)
	}

	return false
}

// splitDefinition removes tag from the top-level conjunction of x. def is
// true when the tag was present; rest is what remains, nil if nothing.
func splitDefinition(x constraint.Expr, tag string) (rest constraint.Expr, def bool) {
	switch e := x.(type) {
	case *constraint.TagExpr:
		if e.Tag == tag {
			return nil, true
		}
	case *constraint.AndExpr:
		l, lok := splitDefinition(e.X, tag)
		r, rok := splitDefinition(e.Y, tag)
		if lok || rok {
			return and(l, r), true
		}
	}

	return x, false
}

func and(x, y constraint.Expr) constraint.Expr {
	switch {
	case x == nil:
		return y
	case y == nil:
		return x
	default:
		return &constraint.AndExpr{X: x, Y: y}
	}
}

func joinMarkers(markers []string) string {
	if len(markers) == 1 {
		return markers[0]
	}

	parts := make([]string, len(markers))
	for i, m := range markers {
		parts[i] = "(" + m + ")"
	}

	return strings.Join(parts, " && ")
}

func exprString(x ast.Expr) string {
	return types.ExprString(x)
}
