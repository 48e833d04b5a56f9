package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStringFallback(t *testing.T) {
	t.Setenv("ONEHUB_TEST_STR", "value")

	assert.Equal(t, "value", GetString("ONEHUB_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetString("ONEHUB_TEST_STR_MISSING", "fallback"))
}

func TestGetIntFallbackOnGarbage(t *testing.T) {
	t.Setenv("ONEHUB_TEST_INT", "not-a-number")

	assert.Equal(t, 30, GetInt("ONEHUB_TEST_INT", 30))

	t.Setenv("ONEHUB_TEST_INT", "45")
	assert.Equal(t, 45, GetInt("ONEHUB_TEST_INT", 30))
}

func TestSplitKeys(t *testing.T) {
	assert.Nil(t, splitKeys(""))
	assert.Equal(t, []string{"a", "b"}, splitKeys(" a, b ,"))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "London", cfg.DefaultCity)
	assert.Equal(t, 30, cfg.TrackerInterval)
}
