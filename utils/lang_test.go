package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalize(t *testing.T) {
	bundle = nil
	assert.Equal(t, "fallback", Localize("en", "analysis_connectivity", nil, "fallback"))

	require.NoError(t, InitI18NBundle("../i18n"))
	defer func() { bundle = nil }()

	data := map[string]interface{}{
		"AlertsGenerated": 3,
		"TotalCost":       1.5,
	}
	assert.Equal(t, "Generated 3 alerts. Cost: $1.50", Localize("en-US,en;q=0.9", "analysis_complete", data, ""))
	assert.Equal(t, "Se generaron 3 alertas. Costo: $1.50", Localize("es", "analysis_complete", data, ""))
	assert.Equal(t, "Generated 3 alerts. Cost: $1.50", Localize("fr", "analysis_complete", data, ""))
	assert.Equal(t, "fallback", Localize("en", "no_such_message", nil, "fallback"))
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.Error(t, InitI18NBundle("./no-such-dir"))
}
