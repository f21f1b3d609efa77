package registry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/vars"
)

func TestNumberProcessor(t *testing.T) {
	zero, ten := 0.0, 10.0
	clamp := &NumberSettings{Min: &zero, Max: &ten, Integer: true}

	tests := []struct {
		name     string
		value    any
		settings any
		want     any
	}{
		{"float", 1.5, nil, 1.5},
		{"int", 4, nil, 4.0},
		{"numeric string", "2.25", nil, 2.25},
		{"empty string removes", "", nil, nil},
		{"garbage removes", "abc", nil, nil},
		{"nil removes", nil, nil, nil},
		{"bool removes", true, nil, nil},
		{"nan removes", math.NaN(), nil, nil},
		{"truncated", 3.7, clamp, 3.0},
		{"clamped low", -4, clamp, 0.0},
		{"clamped high", 99, clamp, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberProcessor(tt.value, nil, tt.settings))
		})
	}
}

func TestStringProcessor(t *testing.T) {
	ctx := &Context{
		ReplaceVariables: vars.Interpolate,
		ScopedVars: vars.ScopedVars{
			vars.FieldVar: {Text: "Field", Value: map[string]any{"name": "cpu"}},
		},
	}

	assert.Equal(t, "${__field.name} load", StringProcessor("${__field.name} load", ctx, &StringSettings{}))
	assert.Equal(t, "cpu load", StringProcessor("${__field.name} load", ctx, &StringSettings{ExpandTemplateVars: true}))
	assert.Equal(t, "12", StringProcessor(12, ctx, nil))
	assert.Nil(t, StringProcessor("", ctx, nil))
	assert.Nil(t, StringProcessor(nil, ctx, nil))
}

func TestThresholdsProcessor(t *testing.T) {
	raw := map[string]any{
		"mode": "percentage",
		"steps": []any{
			map[string]any{"value": nil, "color": "green"},
			map[string]any{"value": 90, "color": "red"},
		},
	}

	got, ok := ThresholdsProcessor(raw, nil, nil).(*fieldconfig.ThresholdsConfig)
	require.True(t, ok)
	assert.Equal(t, fieldconfig.ThresholdsModePercentage, got.Mode)
	assert.True(t, math.IsInf(got.Steps[0].Value, -1))
	assert.InDelta(t, 90, got.Steps[1].Value, 0)

	assert.Nil(t, ThresholdsProcessor(nil, nil, nil))
	assert.Nil(t, ThresholdsProcessor("nonsense", nil, nil))
}

func TestLinksAndMappingsProcessors(t *testing.T) {
	links, ok := LinksProcessor([]any{
		map[string]any{"title": "Go", "url": "/d/x", "targetBlank": true},
	}, nil, nil).([]fieldconfig.DataLink)
	require.True(t, ok)
	assert.Equal(t, []fieldconfig.DataLink{{Title: "Go", URL: "/d/x", TargetBlank: true}}, links)

	mappings, ok := MappingsProcessor([]any{
		map[string]any{"type": "value", "value": "1", "text": "up"},
	}, nil, nil).([]fieldconfig.ValueMapping)
	require.True(t, ok)
	assert.Equal(t, "up", mappings[0].Text)
}

func TestColorAndBooleanProcessors(t *testing.T) {
	c, ok := ColorProcessor(map[string]any{"mode": "scheme"}, nil, nil).(*fieldconfig.ColorConfig)
	require.True(t, ok)
	assert.Equal(t, fieldconfig.ColorModeScheme, c.Mode)

	assert.Equal(t, true, BooleanProcessor("true", nil, nil))
	assert.Nil(t, BooleanProcessor("maybe", nil, nil))
	assert.Equal(t, "x", IdentityProcessor("x", nil, nil))
}
