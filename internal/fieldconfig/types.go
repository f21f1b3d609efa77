package fieldconfig

import (
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

// ThresholdsMode selects how threshold step values are interpreted.
type ThresholdsMode string

const (
	ThresholdsModeAbsolute   ThresholdsMode = "absolute"
	ThresholdsModePercentage ThresholdsMode = "percentage"
)

// Threshold is a single step: values at or above Value use Color.
type Threshold struct {
	Value float64
	Color string
}

type thresholdYAML struct {
	Value *float64 `yaml:"value"`
	Color string   `yaml:"color"`
}

// UnmarshalYAML decodes a step. A null value (how -Inf is persisted) decodes
// to -Inf.
func (t *Threshold) UnmarshalYAML(node *yaml.Node) error {
	var raw thresholdYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}

	t.Color = raw.Color
	if raw.Value == nil {
		t.Value = math.Inf(-1)
	} else {
		t.Value = *raw.Value
	}

	return nil
}

// MarshalYAML encodes -Inf as null.
func (t Threshold) MarshalYAML() (any, error) {
	out := thresholdYAML{Color: t.Color}
	if !math.IsInf(t.Value, -1) {
		v := t.Value
		out.Value = &v
	}

	return out, nil
}

// ThresholdsConfig is an ordered sequence of threshold steps.
type ThresholdsConfig struct {
	Mode  ThresholdsMode `yaml:"mode,omitempty"`
	Steps []Threshold    `yaml:"steps"`
}

// Clone returns a deep copy.
func (t *ThresholdsConfig) Clone() *ThresholdsConfig {
	if t == nil {
		return nil
	}

	return &ThresholdsConfig{
		Mode:  t.Mode,
		Steps: slices.Clone(t.Steps),
	}
}

// ColorMode selects how a field's color is derived.
type ColorMode string

const (
	ColorModeThresholds ColorMode = "thresholds"
	ColorModeScheme     ColorMode = "scheme"
	ColorModeFixed      ColorMode = "fixed"
)

// DefaultSchemeName is used when scheme mode is set without a scheme.
const DefaultSchemeName = "BrBG"

// ColorConfig selects the color policy of a field.
type ColorConfig struct {
	Mode       ColorMode `yaml:"mode,omitempty"`
	SchemeName string    `yaml:"schemeName,omitempty"`
	FixedColor string    `yaml:"fixedColor,omitempty"`
}

// MappingType is the kind of a value mapping.
type MappingType string

const (
	MappingTypeValue MappingType = "value"
	MappingTypeRange MappingType = "range"
)

// ValueMapping replaces a value, or a range of values, with a text.
type ValueMapping struct {
	ID    int         `yaml:"id,omitempty"`
	Type  MappingType `yaml:"type"`
	Text  string      `yaml:"text"`
	Value string      `yaml:"value,omitempty"`
	From  *float64    `yaml:"from,omitempty"`
	To    *float64    `yaml:"to,omitempty"`
}

// DataLink is a link template attached to a field.
type DataLink struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	TargetBlank bool   `yaml:"targetBlank,omitempty"`
}
