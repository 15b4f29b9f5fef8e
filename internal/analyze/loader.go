package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"bitenum-generator/internal/common"
)

// LoadMode specifies what information to load from packages. Syntax is
// parsed separately so that files excluded by build constraints are seen too.
const LoadMode = packages.NeedName | packages.NeedFiles

// GeneratedMarker starts the header of every file written by the generator.
// Such files are skipped when loading.
const GeneratedMarker = "// Code generated by bitenum-generator."

// DefaultDefinitionTag is the build tag marking definition files.
const DefaultDefinitionTag = "bitenum"

// Package is a parsed package, including its build-constrained files.
type Package struct {
	Path  string // Import path
	Name  string // Package name
	Dir   string // Directory of the sources
	Fset  *token.FileSet
	Files []*File // Sorted by path
}

// File is one parsed source file.
type File struct {
	Path   string
	Syntax *ast.File
	// Marker is the file's build constraint with the definition tag
	// removed, "" when the file is always compiled.
	Marker string
	// Definition is true when the constraint requires the definition tag.
	Definition bool
}

// Loader loads Go packages for analysis.
type Loader struct {
	// DefinitionTag marks definition files; DefaultDefinitionTag if empty.
	DefinitionTag string
	// Dir is the working directory for package patterns.
	Dir string
	// Log receives debug output; silent if nil.
	Log logrus.FieldLogger
}

// NewLoader creates a new Loader.
func NewLoader(definitionTag string, log logrus.FieldLogger) *Loader {
	return &Loader{DefinitionTag: definitionTag, Log: log}
}

// Load loads the packages matching patterns (e.g. ".", "./examples/...").
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	res := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		var files []string
		for _, name := range append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...) {
			if strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
				files = append(files, name)
			}
		}

		if len(files) == 0 {
			l.log().WithField("package", pkg.PkgPath).Debug("No Go files, skipping.")
			continue
		}

		p, err := l.ParseFiles(pkg.PkgPath, pkg.Name, files)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		res = append(res, p)
	}

	return res, nil
}

// ParseFiles parses the given files as package name. Files declaring another
// package and files written by the generator are skipped.
func (l *Loader) ParseFiles(pkgPath, name string, files []string) (*Package, error) {
	sources := make(map[string][]byte, len(files))
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}

		sources[f] = src
	}

	return l.parse(pkgPath, name, sources)
}

// ParseSources parses in-memory sources keyed by file name. The package name
// is taken from the first unconstrained file.
func (l *Loader) ParseSources(pkgPath string, sources map[string]string) (*Package, error) {
	raw := make(map[string][]byte, len(sources))
	for name, src := range sources {
		raw[name] = []byte(src)
	}

	return l.parse(pkgPath, "", raw)
}

func (l *Loader) parse(pkgPath, name string, sources map[string][]byte) (*Package, error) {
	paths := make([]string, 0, len(sources))
	for p := range sources {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	pkg := &Package{
		Path: pkgPath,
		Name: name,
		Fset: token.NewFileSet(),
	}

	for _, p := range paths {
		syntax, err := parser.ParseFile(pkg.Fset, p, sources[p], parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}

		if isGenerated(syntax) {
			l.log().WithField("file", p).Debug("Skipping generated file.")
			continue
		}

		file, err := l.newFile(p, syntax)
		if err != nil {
			return nil, err
		}

		pkg.Files = append(pkg.Files, file)
	}

	if pkg.Name == "" {
		pkg.Name = guessName(pkg.Files)
	}

	kept := pkg.Files[:0]
	for _, f := range pkg.Files {
		if f.Syntax.Name.Name != pkg.Name {
			l.log().WithFields(logrus.Fields{
				"file":    f.Path,
				"package": f.Syntax.Name.Name,
			}).Debug("Skipping file of another package.")

			continue
		}

		kept = append(kept, f)
	}

	pkg.Files = kept

	if first, ok := common.First(pkg.Files); ok {
		pkg.Dir = filepath.Dir(first.Path)
	}

	return pkg, nil
}

func (l *Loader) newFile(path string, syntax *ast.File) (*File, error) {
	file := &File{Path: path, Syntax: syntax}

	expr, err := fileConstraint(syntax)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid build constraint: %w", path, err)
	}

	expr = withFileName(expr, path)

	if expr == nil {
		return file, nil
	}

	rest, def := splitDefinition(expr, l.definitionTag())
	file.Definition = def
	if rest != nil {
		file.Marker = rest.String()
	}

	return file, nil
}

func (l *Loader) definitionTag() string {
	if l.DefinitionTag == "" {
		return DefaultDefinitionTag
	}

	return l.DefinitionTag
}

func (l *Loader) log() logrus.FieldLogger {
	if l.Log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)

		return silent
	}

	return l.Log
}

func isGenerated(f *ast.File) bool {
	if len(f.Comments) == 0 || f.Comments[0].Pos() >= f.Package {
		return false
	}

	return ast.IsGenerated(f) && strings.HasPrefix(f.Comments[0].List[0].Text, GeneratedMarker)
}

func guessName(files []*File) string {
	for _, f := range files {
		if f.Marker == "" && !f.Definition {
			return f.Syntax.Name.Name
		}
	}

	if len(files) > 0 {
		return files[0].Syntax.Name.Name
	}

	return ""
}
