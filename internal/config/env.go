package config

import (
	"os"
	"strconv"
	"strings"
)

func envOrDefault(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return defaultValue
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

// intListEnvOrDefault parses a comma-separated list of positive integers.
func intListEnvOrDefault(key string, defaultValue []int) []int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		val, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || val <= 0 {
			return defaultValue
		}
		out = append(out, val)
	}
	return out
}

// mapEnvOrDefault parses "key=value" pairs separated by commas, with integer keys.
func mapEnvOrDefault(key string, defaultValue map[int]string) map[int]string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	out := make(map[int]string)
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			return defaultValue
		}
		year, err := strconv.Atoi(strings.TrimSpace(kv[0]))
		if err != nil || year <= 0 {
			return defaultValue
		}
		out[year] = strings.TrimSpace(kv[1])
	}
	return out
}
