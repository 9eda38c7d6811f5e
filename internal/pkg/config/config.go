package config

import (
	"io"
	"time"
)

// TimeConfig reads integer values and scales them to a duration unit.
type TimeConfig interface {
	GetMillisecond(key string) time.Duration
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration
	GetDay(key string) time.Duration
}

// Config is the read side of the application configuration.
//
// Missing keys return the zero value of the requested type, so callers
// that need a fallback should register it with WithDefaults.
type Config interface {
	io.Closer
	TimeConfig

	GetInt(key string) int
	GetInt64(key string) int64
	GetBool(key string) bool
	GetString(key string) string

	// GetArray accepts a YAML list or a comma separated string.
	GetArray(key string) []string

	// GetMap parses "k1:v1,k2:v2".
	GetMap(key string) map[string]string
}
