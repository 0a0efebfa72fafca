package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRerankConfigYAML_FillsDefaults(t *testing.T) {
	cfg, err := LoadRerankConfigYAML([]byte(`phonetic_weight: 0.5`))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.PhoneticWeight)
	assert.Equal(t, DefaultRerankConfig().FuzzyWeight, cfg.FuzzyWeight)
	assert.NotNil(t, cfg.FuzzyFalloff)
}

func TestLoadRerankConfigYAML_InvalidYAMLFails(t *testing.T) {
	_, err := LoadRerankConfigYAML([]byte(":\n  - bad: [unterminated"))
	assert.Error(t, err)
}
