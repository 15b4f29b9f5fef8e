package gen

import (
	"fmt"
	"go/build/constraint"
	"path"

	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/common"
)

// templateData holds all data needed by the file templates.
type templateData struct {
	Header      string
	BuildLine   string
	PackageName string
	Filename    string
	Imports     []importSpec
	Comments    bool

	Type        string
	Receiver    string
	Runtime     string // Alias of the runtime package
	StorageType string
	BoundedType string
	WrapExpr    string
	UnwrapExpr  string
	Constructor string
	Fallible    bool

	// Declaration re-declares the type and its constants in definition mode.
	Declaration *declaration
	// Guards pins the values of variants declared outside generated code.
	Guards []variantData
	Cases  []variantData
	// Lookups are the helpers of the conditional groups, consulted in order
	// when no unconditional case matches.
	Lookups []string

	// Set for the files of a conditional group.
	Lookup string
	Marker string
}

// declaration is a re-declared type and its constants.
type declaration struct {
	Doc        []string
	Type       string
	Underlying string
	// WithType is false when only the constants are declared.
	WithType bool
	Consts   []variantData
}

// variantData represents a single variant in a template.
type variantData struct {
	Name    string
	Literal string
	Doc     []string
	Comment string
}

// importSpec is an import line; Alias is empty when the path's last element
// names the package.
type importSpec struct {
	Alias string
	Path  string
}

// buildMainData constructs the data of the main file of a.
func (g *Generator) buildMainData(a *analyze.Analysis) (*templateData, error) {
	data, err := g.baseData(a, "", false)
	if err != nil {
		return nil, err
	}

	profile := a.Profile
	unconditional := a.Unconditional()

	data.Filename = g.BaseName(a) + ".go"
	data.BoundedType = profile.BoundedType(data.Runtime)
	data.WrapExpr = profile.Wrap(data.Runtime, data.Receiver)
	data.UnwrapExpr = profile.Unwrap("value")
	data.Constructor = constructorName(a.Enum)
	data.Fallible = a.Fallible
	data.Cases = variantsData(unconditional)

	for i := range a.Groups {
		data.Lookups = append(data.Lookups, lookupName(a.Enum, i))
	}

	if a.Enum.Definition {
		data.Declaration = &declaration{
			Doc:        trimDoc(a.Enum.Doc),
			Type:       a.Enum.Name,
			Underlying: a.Enum.Underlying,
			WithType:   true,
			Consts:     data.Cases,
		}
	} else {
		data.Guards = data.Cases
	}

	if profile.NeedsBounding || a.Fallible {
		data.Imports = append(data.Imports, g.runtimeImport())
	}

	return data, nil
}

// buildConditionData constructs the data of the files of the i-th
// conditional group: the lookup helper compiled when the group's constraint
// holds and its fallback.
func (g *Generator) buildConditionData(a *analyze.Analysis, i int) (cond, fallback *templateData, err error) {
	group := a.Groups[i]
	base := fmt.Sprintf("%s_cond%d", g.BaseName(a), i+1)

	cond, err = g.baseData(a, group.Marker, false)
	if err != nil {
		return nil, nil, err
	}

	cond.Filename = base + ".go"
	cond.Lookup = lookupName(a.Enum, i)
	cond.Marker = group.Marker
	cond.Cases = variantsData(group.Variants)

	if a.Enum.Definition {
		cond.Declaration = &declaration{Type: a.Enum.Name, Consts: cond.Cases}
	} else {
		cond.Guards = cond.Cases
	}

	fallback, err = g.baseData(a, group.Marker, true)
	if err != nil {
		return nil, nil, err
	}

	fallback.Filename = base + "_fallback.go"
	fallback.Lookup = cond.Lookup
	fallback.Marker = group.Marker

	return cond, fallback, nil
}

func (g *Generator) baseData(a *analyze.Analysis, marker string, negate bool) (*templateData, error) {
	line, err := g.buildLine(marker, negate, a.Enum.Definition)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Enum.Name, err)
	}

	return &templateData{
		Header:      analyze.GeneratedMarker + " DO NOT EDIT.",
		BuildLine:   line,
		PackageName: a.Enum.Package,
		Comments:    g.config.GenerateComments,
		Type:        a.Enum.Name,
		Receiver:    receiverName(a.Enum.Name),
		Runtime:     common.PkgAlias(g.config.Runtime),
		StorageType: a.Profile.StorageType(),
	}, nil
}

// buildLine renders the build constraint of a generated file, "" for none.
// In definition mode generated files are excluded when the definition tag is
// set, so that the definition files can be built on their own.
func (g *Generator) buildLine(marker string, negate, definition bool) (string, error) {
	var x constraint.Expr

	if marker != "" {
		parsed, err := constraint.Parse("//go:build " + marker)
		if err != nil {
			return "", fmt.Errorf("invalid build constraint %q: %w", marker, err)
		}

		x = parsed
		if negate {
			x = &constraint.NotExpr{X: x}
		}
	}

	if definition {
		tag := &constraint.NotExpr{X: &constraint.TagExpr{Tag: g.definitionTag()}}
		if x == nil {
			x = tag
		} else {
			x = &constraint.AndExpr{X: x, Y: tag}
		}
	}

	if x == nil {
		return "", nil
	}

	return x.String(), nil
}

func (g *Generator) runtimeImport() importSpec {
	imp := importSpec{Path: g.config.Runtime}
	if alias := common.PkgAlias(imp.Path); alias != path.Base(imp.Path) {
		imp.Alias = alias
	}

	return imp
}

func (g *Generator) definitionTag() string {
	if g.config.DefinitionTag == "" {
		return analyze.DefaultDefinitionTag
	}

	return g.config.DefinitionTag
}

// BaseName is the file name stem shared by the files generated for a type,
// e.g. "http_mode_bitenum".
func (g *Generator) BaseName(a *analyze.Analysis) string {
	return common.SnakeCase(a.Enum.Name) + g.config.Suffix
}

// constructorName returns e.g. "NewModeWithRawValue", unexported for
// unexported types.
func constructorName(desc *analyze.EnumDescriptor) string {
	prefix := "new"
	if desc.Exported {
		prefix = "New"
	}

	return prefix + common.UpperFirst(desc.Name) + "WithRawValue"
}

// lookupName returns the helper of the i-th conditional group, e.g.
// "modeFromRawValueCond1".
func lookupName(desc *analyze.EnumDescriptor, i int) string {
	return fmt.Sprintf("%sFromRawValueCond%d", common.LowerFirst(desc.Name), i+1)
}

func receiverName(typeName string) string {
	return common.LowerFirst(string([]rune(typeName)[:1]))
}

func variantsData(variants []analyze.Variant) []variantData {
	res := make([]variantData, 0, len(variants))
	for _, v := range variants {
		res = append(res, variantData{
			Name:    v.Name,
			Literal: v.ExprText(),
			Doc:     v.Doc,
			Comment: v.Comment,
		})
	}

	return res
}

// trimDoc drops the blank comment lines left at the end of a doc comment
// once the directive is removed.
func trimDoc(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "//" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
