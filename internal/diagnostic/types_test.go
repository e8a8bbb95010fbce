package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnsupportedServiceType, "mapped as raw", "XY", 2)
	d.AddInfo(CodeUnparsableDate, "kept verbatim", "", 0)

	assert.False(t, d.HasErrors())
	assert.True(t, d.HasCode(CodeUnparsableDate))
	assert.Equal(t, "service 2 [XY]: [unsupported-service-type] mapped as raw", d.Warnings[0].String())
	assert.Equal(t, "[unparsable-date] kept verbatim", d.Infos[0].String())

	var other Diagnostics

	other.AddError("broken", "boom", "", 1)
	d.Merge(other)

	require.Error(t, d.Error())
	assert.Equal(t, "service 1: [broken] boom", d.Error().Error())
	assert.Equal(t, "warning", SeverityWarning.String())
}
