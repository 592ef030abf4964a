package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HSP_TEST_STRING", "redis")
	t.Setenv("HSP_TEST_INT", "6379")
	t.Setenv("HSP_TEST_BAD_INT", "six")
	t.Setenv("HSP_TEST_BOOL", "true")
	t.Setenv("HSP_TEST_DURATION", "90s")

	assert.Equal(t, "redis", GetEnvString("HSP_TEST_STRING", "localhost"))
	assert.Equal(t, "localhost", GetEnvString("HSP_TEST_MISSING", "localhost"))
	assert.Equal(t, 6379, GetEnvInt("HSP_TEST_INT", 0))
	assert.Equal(t, 42, GetEnvInt("HSP_TEST_BAD_INT", 42))
	assert.True(t, GetEnvBool("HSP_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("HSP_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("HSP_TEST_MISSING", time.Minute))
}
