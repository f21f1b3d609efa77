package document

import (
	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

// CurrentVersion is the only supported document version.
const CurrentVersion = "1"

// Document is a panel document.
type Document struct {
	Version     string              `yaml:"version"`
	Options     Options             `yaml:"options,omitempty"`
	Frames      []FrameSpec         `yaml:"frames"`
	FieldConfig *fieldconfig.Source `yaml:"fieldConfig,omitempty"`
}

// Options are per-document resolution settings. Unset values fall back to
// the application configuration.
type Options struct {
	AutoMinMax *bool  `yaml:"autoMinMax,omitempty"`
	TimeZone   string `yaml:"timeZone,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
}

// FrameSpec is the serialized form of a frame.
type FrameSpec struct {
	Name   string         `yaml:"name,omitempty"`
	RefID  string         `yaml:"refId,omitempty"`
	Meta   map[string]any `yaml:"meta,omitempty"`
	Fields []FieldSpec    `yaml:"fields"`
}

// FieldSpec is the serialized form of a field.
type FieldSpec struct {
	Name   string                  `yaml:"name,omitempty"`
	Type   frame.FieldType         `yaml:"type,omitempty"`
	Labels map[string]string       `yaml:"labels,omitempty"`
	Config fieldconfig.FieldConfig `yaml:"config,omitempty"`
	Values []any                   `yaml:"values"`
}
