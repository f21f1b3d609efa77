package fieldconfig

// MatcherConfig references a registered matcher and its options.
type MatcherConfig struct {
	ID      string `yaml:"id"`
	Options any    `yaml:"options,omitempty"`
}

// DynamicConfigValue assigns a raw value to a registered property.
type DynamicConfigValue struct {
	ID    string `yaml:"id"`
	Value any    `yaml:"value"`
}

// OverrideRule applies Properties, in order, to every field Matcher selects.
type OverrideRule struct {
	Matcher    MatcherConfig        `yaml:"matcher"`
	Properties []DynamicConfigValue `yaml:"properties"`
}

// Source is the panel-level field configuration: defaults plus override
// rules, applied in rule order.
type Source struct {
	Defaults  FieldConfig    `yaml:"defaults"`
	Overrides []OverrideRule `yaml:"overrides,omitempty"`
}
