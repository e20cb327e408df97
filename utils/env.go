package utils

import (
	"os"
	"strconv"
	"time"
)

// Typed environment lookups. An unset or unparsable variable falls back
// to the given default rather than failing startup.

func GetEnvAsString(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func GetEnvAsInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return result
}

func GetEnvAsUint64(key string, defaultVal uint64) uint64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultVal
	}
	return result
}

func GetEnvAsBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return result
}

// GetEnvAsDuration accepts go duration strings, e.g. "30s" or "2m".
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := time.ParseDuration(value)
	if err != nil {
		return defaultVal
	}
	return result
}
