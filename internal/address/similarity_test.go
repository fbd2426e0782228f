package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalAddresses(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("12 Park Street, Kolkata, 700016", "12 Park Street, Kolkata, 700016"), 1e-9)
}

func TestSimilarity_PunctuationAndCaseNoise(t *testing.T) {
	score := Similarity("MG Road, Sector 15, Gurugram", "mg road sector-15 gurugram")
	assert.GreaterOrEqual(t, score, DuplicateThreshold)
	assert.True(t, IsDuplicate("MG Road, Sector 15, Gurugram", "mg road sector-15 gurugram"))
}

func TestSimilarity_DistinctAddresses(t *testing.T) {
	score := Similarity("MG Road, Gurugram", "Juhu Beach, Mumbai")
	assert.Less(t, score, DuplicateThreshold)
}

func TestSimilarity_EmptyStrings(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("MG Road", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("", "MG Road"), 1e-9)
}
