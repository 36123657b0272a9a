package utils

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of key or defaultVal when it is unset or empty.
func GetEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

// GetEnvDuration parses key as a time.Duration ("10s", "250ms").
func GetEnvDuration(key string, defaultVal time.Duration) time.Duration {
	value := GetEnv(key, "")
	if value == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

// GetEnvBool parses key with strconv.ParseBool.
func GetEnvBool(key string, defaultVal bool) bool {
	value := GetEnv(key, "")
	if value == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return b
}
