package registry

import (
	"math"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

var standardCategory = []string{"Standard field options"}

func isNumeric(f *frame.Field) bool {
	return frame.EffectiveType(f) == frame.FieldTypeNumber
}

func isNotTime(f *frame.Field) bool {
	return frame.EffectiveType(f) != frame.FieldTypeTime
}

// StandardProperties returns freshly built standard property items in
// their canonical order.
func StandardProperties() []Property {
	zero, fifteen := 0.0, 15.0

	return []Property{
		&Item{
			Meta: Info{
				ID: fieldconfig.PathUnit, Path: fieldconfig.PathUnit, Name: "Unit",
				Category: standardCategory,
			},
			Settings:  &StringSettings{Placeholder: "none"},
			Processor: StringProcessor,
			Applies:   isNumeric,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathMin, Path: fieldconfig.PathMin, Name: "Min",
				Description: "Leave empty to calculate based on all values",
				Category:    standardCategory,
			},
			Settings:  &NumberSettings{Placeholder: "auto"},
			Processor: NumberProcessor,
			Applies:   isNumeric,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathMax, Path: fieldconfig.PathMax, Name: "Max",
				Description: "Leave empty to calculate based on all values",
				Category:    standardCategory,
			},
			Settings:  &NumberSettings{Placeholder: "auto"},
			Processor: NumberProcessor,
			Applies:   isNumeric,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathDecimals, Path: fieldconfig.PathDecimals, Name: "Decimals",
				Category: standardCategory,
			},
			Settings:  &NumberSettings{Placeholder: "auto", Min: &zero, Max: &fifteen, Integer: true},
			Processor: NumberProcessor,
			Applies:   isNumeric,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathTitle, Path: fieldconfig.PathTitle, Name: "Title",
				Description: "Field's title",
				Category:    standardCategory,
			},
			Settings:  &StringSettings{Placeholder: "none", ExpandTemplateVars: true},
			Processor: StringProcessor,
			Applies:   isNotTime,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathNoValue, Path: fieldconfig.PathNoValue, Name: "No Value",
				Description: "What to show when there is no value",
				Category:    standardCategory,
			},
			Settings:  &StringSettings{Placeholder: "-"},
			Processor: StringProcessor,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathThresholds, Path: fieldconfig.PathThresholds, Name: "Thresholds",
				Category: []string{"Thresholds"},
				DefaultValue: &fieldconfig.ThresholdsConfig{
					Mode: fieldconfig.ThresholdsModeAbsolute,
					Steps: []fieldconfig.Threshold{
						{Value: math.Inf(-1), Color: "green"},
						{Value: 80, Color: "red"},
					},
				},
			},
			Processor: ThresholdsProcessor,
			Applies:   isNumeric,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathMappings, Path: fieldconfig.PathMappings, Name: "Value mappings",
				Category:     []string{"Value mappings"},
				DefaultValue: []fieldconfig.ValueMapping{},
			},
			Processor: MappingsProcessor,
			Applies:   isNumeric,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathLinks, Path: fieldconfig.PathLinks, Name: "Data links",
				Category: []string{"Data links"},
			},
			Processor: LinksProcessor,
		},
		&Item{
			Meta: Info{
				ID: fieldconfig.PathColor, Path: fieldconfig.PathColor, Name: "Color",
				Description: "Customise color",
				Category:    []string{"Color & thresholds"},
			},
			Processor: ColorProcessor,
		},
	}
}
