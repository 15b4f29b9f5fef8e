package analyze

import (
	"gopkg.in/yaml.v3"

	"bitenum-generator/internal/config"
)

// Summary is the exported form of an Analysis, as printed by the dump command.
type Summary struct {
	Type       string                `yaml:"type"`
	Package    string                `yaml:"package"`
	Position   string                `yaml:"position"`
	Bits       int                   `yaml:"bits"`
	Exhaustive config.Exhaustiveness `yaml:"exhaustive"`
	Storage    string                `yaml:"storage"`
	Bounded    string                `yaml:"bounded"`
	Fallible   bool                  `yaml:"fallible"`
	Definition bool                  `yaml:"definition,omitempty"`
	Variants   []VariantSummary      `yaml:"variants"`
}

// VariantSummary is the exported form of a Variant.
type VariantSummary struct {
	Name    string `yaml:"name"`
	Literal string `yaml:"literal"`
	Value   uint64 `yaml:"value"`
	Marker  string `yaml:"marker,omitempty"`
}

// Summary exports a, qualifying runtime types with the package alias pkg.
func (a *Analysis) Summary(pkg string) Summary {
	s := Summary{
		Type:       a.Enum.Name,
		Package:    a.Enum.PkgPath,
		Position:   a.Enum.Pos.String(),
		Bits:       a.Profile.Bits,
		Exhaustive: a.Config.Exhaustive,
		Storage:    a.Profile.StorageType(),
		Bounded:    a.Profile.BoundedType(pkg),
		Fallible:   a.Fallible,
		Definition: a.Enum.Definition,
		Variants:   make([]VariantSummary, 0, len(a.Variants)),
	}

	for _, v := range a.Variants {
		s.Variants = append(s.Variants, VariantSummary{
			Name:    v.Name,
			Literal: v.ExprText(),
			Value:   v.Value,
			Marker:  v.Marker(),
		})
	}

	return s
}

// MarshalSummaries serializes summaries to YAML.
func MarshalSummaries(summaries []Summary) ([]byte, error) {
	return yaml.Marshal(summaries)
}
