package analyze

import (
	"errors"
	"math"
	"strings"

	"bitenum-generator/internal/config"
	"bitenum-generator/internal/diagnostic"
	"bitenum-generator/internal/width"
)

// unsignedTypes are the underlying types an annotated type may declare.
var unsignedTypes = map[string]bool{
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"uintptr": true,
	"byte":    true,
}

// Analyze checks the variants of desc against cfg and profile. Variants are
// visited in declaration order and the first problem aborts the analysis;
// the returned error is a *diagnostic.Diagnostic naming the offending
// element.
func Analyze(desc *EnumDescriptor, cfg config.Config, profile width.Profile) (*Analysis, error) {
	if err := checkType(desc); err != nil {
		return nil, err
	}

	a := &Analysis{
		Enum:     desc,
		Config:   cfg,
		Profile:  profile,
		Variants: make([]Variant, 0, len(desc.Variants)),
	}

	for _, v := range desc.Variants {
		value, err := discriminant(desc, &v, profile)
		if err != nil {
			return nil, err
		}

		if v.Definition != desc.Definition {
			format := "variant %s is declared in a definition file, but its type is not"
			if desc.Definition {
				format = "variant %s must be declared in a definition file like its type"
			}

			return nil, diagnostic.Errorf(diagnostic.CodeMixedDefinition, v.Pos, desc.Name, v.Name, format, v.Name)
		}

		v.Value = value
		if v.Conditional() {
			a.UsesConditional = true
		}

		a.Variants = append(a.Variants, v)
	}

	if err := checkExhaustiveness(a); err != nil {
		return nil, err
	}

	a.Fallible = cfg.Exhaustive != config.ExhaustiveTrue
	a.Groups = groupConditional(a.Variants)

	return a, nil
}

func checkType(desc *EnumDescriptor) error {
	switch {
	case desc.Alias:
		return diagnostic.Errorf(diagnostic.CodeUnsupportedType, desc.Pos, desc.Name, "",
			"must be a defined type, not an alias of %s", desc.Underlying)
	case desc.Generic:
		return diagnostic.Errorf(diagnostic.CodeUnsupportedType, desc.Pos, desc.Name, "",
			"must not have type parameters")
	case !unsignedTypes[desc.Underlying]:
		return diagnostic.Errorf(diagnostic.CodeUnsupportedType, desc.Pos, desc.Name, "",
			"underlying type %s is not an unsigned integer", desc.Underlying)
	case desc.Marker != "":
		return diagnostic.Errorf(diagnostic.CodeUnsupportedType, desc.Pos, desc.Name, "",
			"type must not be declared in a file with build constraints (%s), only its values may", desc.Marker)
	}

	return nil
}

// discriminant parses and range checks the value of v.
func discriminant(desc *EnumDescriptor, v *Variant, profile width.Profile) (uint64, error) {
	if v.Expr == nil {
		return 0, diagnostic.Errorf(diagnostic.CodeMissingDiscriminant, v.Pos, desc.Name, v.Name,
			"variant %s needs to have a value", v.Name)
	}

	value, err := ParseDiscriminant(v.Expr)

	switch {
	case errors.Is(err, ErrTooLarge):
		return 0, diagnostic.Errorf(diagnostic.CodeDiscriminantOverflow, v.Pos, desc.Name, v.Name,
			"value of %s exceeds the given number of bits", v.Name)
	case err != nil:
		return 0, diagnostic.Errorf(diagnostic.CodeInvalidDiscriminant, v.Pos, desc.Name, v.Name,
			"error parsing %q as integer. Supported: hexadecimal, octal, binary and decimal "+
				"unsigned integers, but not expressions", strings.ReplaceAll(v.ExprText(), "_", ""))
	case !profile.Fits(value):
		return 0, diagnostic.Errorf(diagnostic.CodeDiscriminantOverflow, v.Pos, desc.Name, v.Name,
			"value of %s exceeds the given number of bits", v.Name)
	}

	return value, nil
}

// checkExhaustiveness cross-checks conditional markers and the variant count
// against the declared exhaustiveness. Variant values are distinct, so the
// count alone tells whether every raw value is mapped.
func checkExhaustiveness(a *Analysis) error {
	desc, mode := a.Enum, a.Config.Exhaustive

	switch {
	case a.UsesConditional && mode != config.ExhaustiveConditional:
		return diagnostic.Errorf(diagnostic.CodeConditionalMismatch, desc.Pos, desc.Name, "",
			"if any values are declared in files with build constraints, "+
				"the type must be marked as 'exhaustive: conditional'")
	case !a.UsesConditional && mode == config.ExhaustiveConditional:
		return diagnostic.Errorf(diagnostic.CodeConditionalMismatch, desc.Pos, desc.Name, "",
			"no values are declared in files with build constraints, so the type must not be "+
				"marked as conditional. Change to 'exhaustive: true' or 'exhaustive: false'")
	}

	n := uint64(len(a.Variants))
	capacity, bounded := a.Profile.Capacity()

	switch mode {
	case config.ExhaustiveTrue:
		if !bounded || n != capacity {
			return diagnostic.Errorf(diagnostic.CodeMissingVariants, desc.Pos, desc.Name, "",
				"type is marked as exhaustive, but it is missing variants")
		}
	case config.ExhaustiveFalse:
		if bounded && n >= capacity {
			return diagnostic.Errorf(diagnostic.CodeNotMarkedExhaustive, desc.Pos, desc.Name, "",
				"type is exhaustive, but not marked accordingly. Add 'exhaustive: true'")
		}
	case config.ExhaustiveConditional:
		// The count after build constraints are applied is unknown here.
	}

	return nil
}

func groupConditional(variants []Variant) []ConditionGroup {
	var (
		groups []ConditionGroup
		index  = make(map[string]int)
	)

	for _, v := range variants {
		if !v.Conditional() {
			continue
		}

		marker := v.Marker()

		i, ok := index[marker]
		if !ok {
			i = len(groups)
			index[marker] = i
			groups = append(groups, ConditionGroup{Marker: marker})
		}

		groups[i].Variants = append(groups[i].Variants, v)
	}

	return groups
}

// Coverage returns the share of raw values that map to an unconditional
// variant, in [0, 1].
func (a *Analysis) Coverage() float64 {
	return float64(len(a.Unconditional())) / math.Ldexp(1, a.Profile.Bits)
}
