package config_test

import (
	"testing"

	"github.com/lth/wordgen/internal/config"
	"github.com/lth/wordgen/internal/generator"
	"github.com/stretchr/testify/assert"
)

func TestDefaults_Sanity(t *testing.T) {
	assert.NotEmpty(t, config.Version)
	assert.Greater(t, config.DefaultMinLength, 0)
	assert.LessOrEqual(t, config.DefaultMinLength, config.DefaultMaxLength)
	assert.NotEmpty(t, config.DefaultOutput)
}

// The CLI defaults and the generator defaults must agree.
func TestLimits_MatchGenerator(t *testing.T) {
	l := generator.DefaultLimits()
	assert.Equal(t, config.DefaultMaxWordLength, l.MaxWordLength)
	assert.Equal(t, config.DefaultMaxKeywords, l.MaxKeywords)
	assert.Equal(t, uint64(config.DefaultMaxCandidates), l.MaxCandidates)
}
