package config

import (
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTimeZone = "Asia/Seoul"

	// Session store
	DefaultSessionTTL    = 60 * time.Minute
	DefaultSweepSchedule = "*/10 * * * *" // expire idle sessions every ten minutes

	// Loan API
	DefaultLoanPort     = 7143
	DefaultMaxUploadMB  = 32
	DefaultServicesFile = "services.yaml"

	// Logger
	DefaultLogFolder     = "./logs"
	DefaultMaxLogFileMB  = 10
	DefaultRetentionDays = 30
)

// Int reads an integer from a services.yaml config map. yaml.v3 yields int,
// JSON-ish sources yield float64 and env overrides arrive as strings.
func Int(cfg map[string]interface{}, key string, def int) int {
	v, ok := cfg[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return def
}

// String reads a non-empty string from a services.yaml config map.
func String(cfg map[string]interface{}, key, def string) string {
	if s, ok := cfg[key].(string); ok && s != "" {
		return s
	}
	return def
}
