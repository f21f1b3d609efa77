package display

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

func thresholdField(cfg fieldconfig.Values) *frame.Field {
	return &frame.Field{
		Name:   "v",
		Type:   frame.FieldTypeNumber,
		Config: fieldconfig.FieldConfig{Standard: cfg},
	}
}

func TestProcessorNumbers(t *testing.T) {
	tests := []struct {
		name     string
		config   fieldconfig.Values
		value    any
		expected string
	}{
		{"plain", fieldconfig.Values{}, 12.5, "12.5"},
		{"decimals", fieldconfig.Values{fieldconfig.PathDecimals: 2.0}, 1.0 / 3, "0.33"},
		{"percent", fieldconfig.Values{fieldconfig.PathUnit: "percent"}, 42, "42%"},
		{"percentunit", fieldconfig.Values{fieldconfig.PathUnit: "percentunit", fieldconfig.PathDecimals: 0}, 0.5, "50%"},
		{"other unit", fieldconfig.Values{fieldconfig.PathUnit: "ms"}, 3, "3 ms"},
		{"no value", fieldconfig.Values{fieldconfig.PathNoValue: "N/A"}, nil, "N/A"},
		{"nan is no value", fieldconfig.Values{fieldconfig.PathNoValue: "-"}, math.NaN(), "-"},
		{"text", fieldconfig.Values{}, "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := NewProcessor(Options{Field: thresholdField(tt.config), Theme: DarkTheme()})
			assert.Equal(t, tt.expected, proc(tt.value).String())
		})
	}
}

func TestProcessorThresholdColor(t *testing.T) {
	th := &fieldconfig.ThresholdsConfig{
		Mode: fieldconfig.ThresholdsModeAbsolute,
		Steps: []fieldconfig.Threshold{
			{Value: math.Inf(-1), Color: "green"},
			{Value: 80, Color: "red"},
		},
	}
	cfg := fieldconfig.Values{
		fieldconfig.PathThresholds: th,
		fieldconfig.PathColor:      &fieldconfig.ColorConfig{Mode: fieldconfig.ColorModeThresholds},
	}

	proc := NewProcessor(Options{Field: thresholdField(cfg), Theme: DarkTheme()})

	assert.Equal(t, DarkTheme().Palette["green"], proc(10).Color)
	assert.Equal(t, DarkTheme().Palette["red"], proc(80).Color)
}

func TestProcessorPercentageThresholds(t *testing.T) {
	cfg := fieldconfig.Values{
		fieldconfig.PathMin: 0.0,
		fieldconfig.PathMax: 200.0,
		fieldconfig.PathThresholds: &fieldconfig.ThresholdsConfig{
			Mode: fieldconfig.ThresholdsModePercentage,
			Steps: []fieldconfig.Threshold{
				{Value: math.Inf(-1), Color: "green"},
				{Value: 50, Color: "#ff0000"},
			},
		},
	}

	proc := NewProcessor(Options{Field: thresholdField(cfg), Theme: LightTheme()})

	assert.Equal(t, LightTheme().Palette["green"], proc(99).Color)
	assert.Equal(t, "#ff0000", proc(100).Color)
}

func TestProcessorFixedColor(t *testing.T) {
	cfg := fieldconfig.Values{
		fieldconfig.PathColor: &fieldconfig.ColorConfig{Mode: fieldconfig.ColorModeFixed, FixedColor: "purple"},
	}

	proc := NewProcessor(Options{Field: thresholdField(cfg), Theme: DarkTheme()})
	assert.Equal(t, DarkTheme().Palette["purple"], proc(1).Color)
}

func TestProcessorValueMappings(t *testing.T) {
	from, to := 10.0, 20.0
	cfg := fieldconfig.Values{
		fieldconfig.PathMappings: []fieldconfig.ValueMapping{
			{Type: fieldconfig.MappingTypeValue, Value: "1", Text: "up"},
			{Type: fieldconfig.MappingTypeRange, From: &from, To: &to, Text: "teens"},
		},
	}

	proc := NewProcessor(Options{Field: thresholdField(cfg)})

	assert.Equal(t, "up", proc(1).Text)
	assert.Equal(t, "up", proc("1").Text)
	assert.Equal(t, "teens", proc(15.5).Text)
	assert.Equal(t, "21", proc(21).Text)
}

func TestProcessorTime(t *testing.T) {
	f := &frame.Field{Name: "time", Type: frame.FieldTypeTime}
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	proc := NewProcessor(Options{Field: f, TimeZone: "utc"})
	assert.Equal(t, "2024-03-01 12:30:00", proc(ts).Text)
	assert.Equal(t, "2024-03-01 12:30:00", proc(ts.UnixMilli()).Text)
	assert.InDelta(t, float64(ts.UnixMilli()), proc(ts).Numeric, 0)
}

func TestFieldsProxy(t *testing.T) {
	f := &frame.Frame{
		Name: "A",
		Fields: []*frame.Field{
			{Name: "host", Type: frame.FieldTypeString, Values: frame.ArrayVector{"a", "b"}},
			{Name: "cpu", Type: frame.FieldTypeNumber, Values: frame.ArrayVector{1.5, 2.5}},
		},
	}

	p := FieldsProxy(f, 1, nil, DarkTheme(), "")
	assert.Equal(t, "b", p["host"].Text)
	assert.InDelta(t, 2.5, p["cpu"].Numeric, 0)

	scope := p.Scope()
	cpu, ok := scope["cpu"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "2.5", cpu["text"])
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "light", ThemeByName("LIGHT").Name)
	assert.Equal(t, "dark", ThemeByName("").Name)
	assert.Equal(t, "#123456", DarkTheme().Visualize("#123456"))
}
