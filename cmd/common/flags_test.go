package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlagValidator_AllValid tests that valid values produce no error
func TestFlagValidator_AllValid(t *testing.T) {
	v := NewFlagValidator()
	v.RequirePositiveInt("population", 20)
	v.RequireRate("mutation", 0.1)
	v.RequireRate("crossover", 1.0)

	assert.NoError(t, v.Err())
}

// TestFlagValidator_CollectsFailures tests that every failure is reported
func TestFlagValidator_CollectsFailures(t *testing.T) {
	v := NewFlagValidator()
	v.RequirePositiveInt("population", 0)
	v.RequireRate("mutation", 1.5)
	v.RequireRate("crossover", -0.2)

	err := v.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-population")
	assert.Contains(t, err.Error(), "-mutation")
	assert.Contains(t, err.Error(), "-crossover")
}
