package fieldconfig

import (
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Decode converts a loosely typed value (as produced by a YAML or JSON
// decoder) into out by round-tripping it through YAML.
func Decode(raw any, out any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}

	return nil
}

// ToThresholds converts raw into a thresholds configuration.
func ToThresholds(raw any) (*ThresholdsConfig, error) {
	switch v := raw.(type) {
	case *ThresholdsConfig:
		return v.Clone(), nil
	case ThresholdsConfig:
		return v.Clone(), nil
	}

	var t ThresholdsConfig
	if err := Decode(raw, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// ToColor converts raw into a color configuration.
func ToColor(raw any) (*ColorConfig, error) {
	switch v := raw.(type) {
	case *ColorConfig:
		c := *v
		return &c, nil
	case ColorConfig:
		return &v, nil
	}

	var c ColorConfig
	if err := Decode(raw, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// ToMappings converts raw into value mappings.
func ToMappings(raw any) ([]ValueMapping, error) {
	if v, ok := raw.([]ValueMapping); ok {
		return v, nil
	}

	var m []ValueMapping
	if err := Decode(raw, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// ToLinks converts raw into data links.
func ToLinks(raw any) ([]DataLink, error) {
	if v, ok := raw.([]DataLink); ok {
		return v, nil
	}

	var l []DataLink
	if err := Decode(raw, &l); err != nil {
		return nil, err
	}

	return l, nil
}

// DecodeStandard converts the raw value of a standard key into its typed
// form. Unknown keys are returned unchanged.
func DecodeStandard(key string, raw any) (any, error) {
	switch key {
	case PathTitle, PathUnit, PathNoValue:
		return cast.ToStringE(raw)
	case PathMin, PathMax:
		return cast.ToFloat64E(raw)
	case PathDecimals:
		return cast.ToIntE(raw)
	case PathThresholds:
		return ToThresholds(raw)
	case PathColor:
		return ToColor(raw)
	case PathMappings:
		return ToMappings(raw)
	case PathLinks:
		return ToLinks(raw)
	default:
		return raw, nil
	}
}
