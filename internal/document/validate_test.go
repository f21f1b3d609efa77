package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldoverrides/internal/diagnostic"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
	}{
		{
			name: "valid",
			yaml: sampleDoc,
		},
		{
			name:   "unsupported version",
			yaml:   "version: \"2\"\nframes: []\n",
			errors: []string{diagnostic.CodeUnsupportedVersion},
		},
		{
			name: "field lengths and types",
			yaml: `
frames:
  - fields:
      - {name: a, values: [1, 2]}
      - {name: b, type: decimal, values: [1]}
      - {name: a, values: [3, 4]}
`,
			errors:   []string{diagnostic.CodeInvalidFieldType, diagnostic.CodeFieldLength},
			warnings: []string{diagnostic.CodeDuplicateFieldName},
		},
		{
			name: "unknown ids",
			yaml: `
frames: []
fieldConfig:
  overrides:
    - matcher: {id: byNam, options: a}
      properties:
        - {id: unitt, value: ms}
    - matcher: {id: byRegexp, options: "("}
`,
			errors:   []string{diagnostic.CodeInvalidMatcher},
			warnings: []string{diagnostic.CodeUnknownMatcher, diagnostic.CodeUnknownProperty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(doc, nil, nil)

			assert.Equal(t, tt.errors, codes(res.Errors))
			assert.Equal(t, tt.warnings, codes(res.Warnings))
		})
	}
}

func TestValidateSuggestions(t *testing.T) {
	doc, err := Parse([]byte(`
fieldConfig:
  overrides:
    - matcher: {id: ByName, options: a}
      properties:
        - {id: no_value, value: "-"}
`))
	require.NoError(t, err)

	res := Validate(doc, nil, nil)
	require.Len(t, res.Warnings, 2)

	assert.Equal(t, "byName", res.Warnings[0].Suggestions[0])
	assert.Equal(t, []string{"noValue"}, res.Warnings[1].Suggestions)
	assert.Equal(t, "overrides[0]", res.Warnings[1].Rule)
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil, nil, nil)
	assert.True(t, res.HasErrors())
}

func codes(diags []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}
