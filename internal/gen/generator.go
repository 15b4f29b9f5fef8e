package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"bitenum-generator/internal/analyze"
)

// DefaultRuntime is the import path of the bounded integer package used by
// generated code.
const DefaultRuntime = "bitenum-generator/arbint"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Runtime is the import path of the bounded integer package.
	Runtime string
	// Suffix is appended to the snake-cased type name to form file names.
	Suffix string
	// DefinitionTag is the build tag of definition files.
	DefinitionTag string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
	// DebugDir receives the unformatted source of files that fail to format.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Runtime:          DefaultRuntime,
		Suffix:           "_bitenum",
		DefinitionTag:    analyze.DefaultDefinitionTag,
		GenerateComments: true,
	}
}

// Generator generates Go code from an analysis. It keeps no state between
// calls and may be used from several goroutines.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Config returns the configuration of g.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "mode_bitenum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates the files of an analyzed type: the main file holding
// RawValue and the constructor and, for every conditional group, a lookup
// helper guarded by the group's build constraint plus its fallback.
func (g *Generator) Generate(a *analyze.Analysis) ([]GeneratedFile, error) {
	data, err := g.buildMainData(a)
	if err != nil {
		return nil, err
	}

	main, err := g.render(mainTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", a.Enum.Name, err)
	}

	files := []GeneratedFile{*main}

	for i := range a.Groups {
		cond, fallback, err := g.buildConditionData(a, i)
		if err != nil {
			return nil, err
		}

		for _, item := range []struct {
			tmpl *template.Template
			data *templateData
		}{
			{conditionTemplate, cond},
			{fallbackTemplate, fallback},
		} {
			file, err := g.render(item.tmpl, item.data)
			if err != nil {
				return nil, fmt.Errorf("generating %s for %s: %w", a.Enum.Name, a.Groups[i].Marker, err)
			}

			files = append(files, *file)
		}
	}

	return files, nil
}

func (g *Generator) render(tmpl *template.Template, data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, data.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

var templates = template.Must(template.New("").Parse(`
{{define "header"}}{{.Header}}
{{if .BuildLine}}
//go:build {{.BuildLine}}
{{end}}
package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}{{end}}

{{define "guard"}}
func _() {
	// An "invalid array index" compiler error signifies that a constant
	// value has changed. Re-run bitenum-generator to generate them again.
	var x [1]struct{}
{{- range .Guards}}
	_ = x[{{.Name}}-{{.Literal}}]
{{- end}}
}
{{end}}

{{define "declaration"}}
{{- if .WithType}}
{{range .Doc}}{{.}}
{{end}}type {{.Type}} {{.Underlying}}
{{end}}
const (
{{- range .Consts}}
{{- range .Doc}}
	{{.}}
{{- end}}
	{{.Name}} {{$.Type}} = {{.Literal}}{{if .Comment}} {{.Comment}}{{end}}
{{- end}}
)
{{end}}

{{define "main"}}{{template "header" .}}
{{- if .Declaration}}{{template "declaration" .Declaration}}{{else if .Guards}}{{template "guard" .}}{{end}}
{{if .Comments}}// RawValue returns the packed representation of {{.Receiver}}.
{{end}}func ({{.Receiver}} {{.Type}}) RawValue() {{.BoundedType}} {
	return {{.WrapExpr}}
}
{{if .Fallible}}
{{if .Comments}}// {{.Constructor}} returns the {{.Type}} with the given raw value. If no
// variant has it, the error is an *{{.Runtime}}.UnmappedError.
{{end}}func {{.Constructor}}(value {{.BoundedType}}) ({{.Type}}, error) {
	switch raw := {{.UnwrapExpr}}; raw {
{{- range .Cases}}
	case {{.Literal}}:
		return {{.Name}}, nil
{{- end}}
	default:
{{- range .Lookups}}
		if v, ok := {{.}}(raw); ok {
			return v, nil
		}
{{- end}}
		return 0, &{{.Runtime}}.UnmappedError[{{.StorageType}}]{Type: "{{.Type}}", Value: raw}
	}
}
{{else}}
{{if .Comments}}// {{.Constructor}} returns the {{.Type}} with the given raw value. Every
// raw value maps to a variant, so it never fails.
{{end}}func {{.Constructor}}(value {{.BoundedType}}) {{.Type}} {
	switch {{.UnwrapExpr}} {
{{- range .Cases}}
	case {{.Literal}}:
		return {{.Name}}
{{- end}}
	default:
		panic("{{.Type}}: unhandled value")
	}
}
{{end}}{{end}}

{{define "condition"}}{{template "header" .}}
{{- if .Declaration}}{{template "declaration" .Declaration}}{{else}}{{template "guard" .}}{{end}}
{{if .Comments}}// {{.Lookup}} maps the raw values of the {{.Type}} variants built with
// {{.Marker}}.
{{end}}func {{.Lookup}}(raw {{.StorageType}}) ({{.Type}}, bool) {
	switch raw {
{{- range .Cases}}
	case {{.Literal}}:
		return {{.Name}}, true
{{- end}}
	default:
		return 0, false
	}
}
{{end}}

{{define "fallback"}}{{template "header" .}}
{{if .Comments}}// {{.Lookup}} reports no match: the {{.Type}} variants it would map are
// not built.
{{end}}func {{.Lookup}}({{.StorageType}}) ({{.Type}}, bool) {
	return 0, false
}
{{end}}
`))

var (
	mainTemplate      = templates.Lookup("main")
	conditionTemplate = templates.Lookup("condition")
	fallbackTemplate  = templates.Lookup("fallback")
)
