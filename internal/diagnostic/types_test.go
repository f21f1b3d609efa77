package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsSeverities(t *testing.T) {
	var d Diagnostics

	assert.NoError(t, d.Error())
	assert.Zero(t, d.Len())

	d.AddInfo("info", "note", "", "")
	d.AddWarning(CodeUnknownProperty, "unknown property", "overrides[0]", "properties[1].id", "unit")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddError(CodeFieldLength, "length 2, expected 3", "", "frames[0].fields[1]")
	d.AddError(CodeUnknownMatcher, "unknown matcher", "overrides[2]", "matcher.id")

	assert.True(t, d.HasErrors())
	assert.Equal(t, 4, d.Len())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"frames[0].fields[1]: [field-length-mismatch] length 2, expected 3; "+
			"overrides[2] matcher.id: [unknown-matcher] unknown matcher",
		err.Error())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{name: "bare", diag: Diagnostic{Message: "m"}, expected: "m"},
		{name: "code", diag: Diagnostic{Code: "c", Message: "m"}, expected: "[c] m"},
		{
			name:     "suggestions",
			diag:     Diagnostic{Code: "c", Message: "m", Rule: "overrides[0]", Suggestions: []string{"a", "b"}},
			expected: "overrides[0]: [c] m (did you mean a, b?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "x", "", "")
	b.AddWarning("y", "y", "", "")
	b.AddInfo("z", "z", "", "")
	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
