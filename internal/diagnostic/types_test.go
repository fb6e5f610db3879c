package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "empty table"},
			expected: "empty table",
		},
		{
			name:     "with code",
			diag:     Diagnostic{Code: "ALS001", Message: "empty representative"},
			expected: "[ALS001] empty representative",
		},
		{
			name:     "with group and alias",
			diag:     Diagnostic{Code: "ALS003", Message: "moved", Representative: "B", Alias: "x"},
			expected: `[B] "x": [ALS003] moved`,
		},
		{
			name:     "alias only",
			diag:     Diagnostic{Message: "blank", Alias: ""},
			expected: "blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo("ALS005", "shared key", "A", "a")
	d.AddWarning("ALS003", "moved", "B", "x")
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())

	d.AddError("ALS001", "empty representative", "", "")
	d.AddError("ALS006", "unknown transform", "", "")
	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"ALS001", "ALS006", "ALS003", "ALS005"}, d.Codes())
	assert.Equal(t, SeverityWarning, d.All()[2].Severity)
	assert.EqualError(t, d.Error(), "[ALS001] empty representative; [ALS006] unknown transform")

	var other Diagnostics
	other.AddWarning("ALS002", "empty alias", "C", "")
	d.Merge(other)
	assert.Len(t, d.Warnings, 2)
}
