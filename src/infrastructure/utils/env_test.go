package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("RELAY_TEST_VALUE", "hello")
	t.Setenv("RELAY_TEST_EMPTY", "")

	assert.Equal(t, "hello", GetEnv("RELAY_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnv("RELAY_TEST_EMPTY", "default"))
	assert.Equal(t, "default", GetEnv("RELAY_TEST_MISSING", "default"))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("RELAY_TEST_TIMEOUT", "250ms")
	t.Setenv("RELAY_TEST_BAD", "soon")
	t.Setenv("RELAY_TEST_NEGATIVE", "-1s")

	assert.Equal(t, 250*time.Millisecond, GetEnvDuration("RELAY_TEST_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("RELAY_TEST_BAD", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("RELAY_TEST_NEGATIVE", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("RELAY_TEST_UNSET", time.Second))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("RELAY_TEST_FLAG", "true")
	t.Setenv("RELAY_TEST_JUNK", "maybe")

	assert.True(t, GetEnvBool("RELAY_TEST_FLAG", false))
	assert.False(t, GetEnvBool("RELAY_TEST_JUNK", false))
	assert.True(t, GetEnvBool("RELAY_TEST_NONE", true))
}
