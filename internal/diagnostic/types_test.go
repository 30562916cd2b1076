package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("empty_key", "literal key is empty", "", "literals[0].key")
	d.AddInfo("prefix_literal", `"GET" is a prefix of "GETX"`, "GET", "")
	assert.False(t, d.HasErrors())

	other := &Diagnostics{}
	other.AddError("duplicate_key", "duplicate literal key", "GET", "literals[2].key")
	d.Merge(other)
	d.Merge(nil)

	require.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.EqualError(t, d.Error(), `literals[2].key "GET": [duplicate_key] duplicate literal key`)
}

func TestDiagnostic_Suggestions(t *testing.T) {
	d := &Diagnostics{}
	diag := d.AddError("unknown_value", "value Gett is not declared", "GET", "")
	diag.Suggestions = []string{"Get", "GetX"}

	assert.Equal(t, `"GET": [unknown_value] value Gett is not declared (did you mean Get, GetX?)`,
		d.Errors[0].String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
