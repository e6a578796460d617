package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddWarning(CodeDuplicateName, `srg name "func_1_a" registered twice`, "methods.csv", 7)
	d.AddInfo(CodeUnmappedSymbol, "class a has the same name in every namespace", "classes.csv", 2)
	assert.False(t, d.HasErrors())

	d.AddError(CodeMissingOwner, `owner class "zz" not found`, "fields.csv", 12)
	d.AddError(CodeMalformedRow, "2 columns, need at least 3", "classes.csv", 0)

	assert.True(t, d.HasErrors())
	assert.Equal(t, 1, d.Count(CodeMissingOwner))
	assert.Equal(t, 1, d.Count(CodeDuplicateName))
	assert.Equal(t, 0, d.Count(CodeUnreadableTable))

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`fields.csv:12: [missing_owner] owner class "zz" not found; classes.csv: [malformed_row] 2 columns, need at least 3`,
		err.Error())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeMalformedRow, "x", "", 0)
	b.AddWarning(CodeDuplicateName, "y", "", 0)
	b.AddInfo(CodeUnmappedSymbol, "z", "", 0)

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "[unmapped_symbol] z", a.Infos[0].String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
