package irt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/psymetrics/irt"
)

// TestModelFamily_String covers the closed family set.
func TestModelFamily_String(t *testing.T) {
	assert.Equal(t, "GPCM", irt.FamilyGPCM.String())
	assert.Equal(t, "3PL", irt.FamilyThreePL.String())
	assert.Equal(t, "GRM", irt.FamilyGradedResponse.String())
	assert.Equal(t, "unknown", irt.ModelFamily(99).String())
}

// TestDefaultScoreWeights checks weight[k] = k.
func TestDefaultScoreWeights(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, irt.DefaultScoreWeights(4))
	assert.Empty(t, irt.DefaultScoreWeights(0))
}
