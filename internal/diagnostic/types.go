package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strings"

	"bitenum-generator/internal/common"
)

// Diagnostics holds all diagnostics of a run.
type Diagnostics struct {
	Errors   []*Diagnostic
	Warnings []*Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Enum names the annotated type this relates to (if any).
	Enum string
	// Variant names the constant this relates to (if any).
	Variant string
	// Pos locates the offending declaration; zero when unknown.
	Pos token.Position
	// Err is the underlying cause, if any.
	Err error
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Errorf builds an error diagnostic.
func Errorf(code Code, pos token.Position, enum, variant, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Enum:     enum,
		Variant:  variant,
		Pos:      pos,
	}
}

// Wrap builds an error diagnostic from err, keeping it as the cause.
func Wrap(code Code, pos token.Position, enum string, err error) *Diagnostic {
	d := Errorf(code, pos, enum, "", "%v", err)
	d.Err = err

	return d
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return d.String()
}

// Unwrap returns the underlying cause.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// String returns a formatted diagnostic string, e.g.
// "mode.go:12:2: Mode.C: [discriminant-overflow] value of C exceeds the given number of bits".
func (d *Diagnostic) String() string {
	var prefix []string
	if d.Pos.IsValid() {
		prefix = append(prefix, d.Pos.String()+":")
	}

	switch {
	case d.Enum != "" && d.Variant != "":
		prefix = append(prefix, d.Enum+"."+d.Variant+":")
	case d.Enum != "":
		prefix = append(prefix, d.Enum+":")
	}

	msg := d.Message
	if d.Code != 0 {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + " " + msg
	}

	return msg
}

// Add records d by its severity.
func (ds *Diagnostics) Add(d *Diagnostic) {
	if d.Severity == SeverityWarning {
		ds.Warnings = append(ds.Warnings, d)
		return
	}

	ds.Errors = append(ds.Errors, d)
}

// AddError records err, wrapping it when it is not a diagnostic already.
func (ds *Diagnostics) AddError(err error) {
	var d *Diagnostic
	if !errors.As(err, &d) {
		d = &Diagnostic{Severity: SeverityError, Message: err.Error(), Err: err}
	}

	ds.Add(d)
}

// AddWarning adds a warning diagnostic.
func (ds *Diagnostics) AddWarning(code Code, pos token.Position, enum, format string, args ...any) {
	ds.Warnings = append(ds.Warnings, &Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Enum:     enum,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (ds *Diagnostics) Merge(other Diagnostics) {
	ds.Errors = append(ds.Errors, other.Errors...)
	ds.Warnings = append(ds.Warnings, other.Warnings...)
}

// Sort orders diagnostics by position so output is deterministic.
func (ds *Diagnostics) Sort() {
	less := func(list []*Diagnostic) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := list[i].Pos, list[j].Pos
			if a.Filename != b.Filename {
				return a.Filename < b.Filename
			}

			if a.Line != b.Line {
				return a.Line < b.Line
			}

			return a.Column < b.Column
		}
	}

	sort.SliceStable(ds.Errors, less(ds.Errors))
	sort.SliceStable(ds.Warnings, less(ds.Warnings))
}

// Error returns a combined error from all error diagnostics, or nil if there
// are none.
func (ds *Diagnostics) Error() error {
	if !ds.HasErrors() {
		return nil
	}

	if common.IsSingle(ds.Errors) {
		return ds.Errors[0]
	}

	parts := make([]string, 0, len(ds.Errors))
	for _, e := range ds.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "\n"))
}
