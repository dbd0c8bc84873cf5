package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SPOTREPORT_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("SPOTREPORT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SPOTREPORT_TEST_MISSING", "fallback"))
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("SPOTREPORT_TEST_INT", "64")
	assert.Equal(t, int64(64), getEnvInt64("SPOTREPORT_TEST_INT", 32))

	t.Setenv("SPOTREPORT_TEST_INT", "not-a-number")
	assert.Equal(t, int64(32), getEnvInt64("SPOTREPORT_TEST_INT", 32))

	assert.Equal(t, int64(32), getEnvInt64("SPOTREPORT_TEST_INT_MISSING", 32))
}
