package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	cfg := map[string]interface{}{
		"yaml":   16,
		"json":   float64(8),
		"env":    " 4 ",
		"bad":    "four",
		"nil":    nil,
		"wide":   int64(2),
		"string": true,
	}
	assert.Equal(t, 16, Int(cfg, "yaml", 0))
	assert.Equal(t, 8, Int(cfg, "json", 0))
	assert.Equal(t, 4, Int(cfg, "env", 0))
	assert.Equal(t, 2, Int(cfg, "wide", 0))
	assert.Equal(t, 7, Int(cfg, "bad", 7))
	assert.Equal(t, 7, Int(cfg, "nil", 7))
	assert.Equal(t, 7, Int(cfg, "string", 7))
	assert.Equal(t, 7, Int(cfg, "missing", 7))
	assert.Equal(t, 7, Int(nil, "missing", 7))
}

func TestString(t *testing.T) {
	cfg := map[string]interface{}{"tz": "Asia/Seoul", "empty": "", "num": 3}
	assert.Equal(t, "Asia/Seoul", String(cfg, "tz", "UTC"))
	assert.Equal(t, "UTC", String(cfg, "empty", "UTC"))
	assert.Equal(t, "UTC", String(cfg, "num", "UTC"))
	assert.Equal(t, "UTC", String(nil, "tz", "UTC"))
}
