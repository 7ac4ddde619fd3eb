package config

import (
	"fmt"
	"strings"
)

var outputFormats = map[string]struct{}{
	"table":    {},
	"tsv":      {},
	"json":     {},
	"ndjson":   {},
	"csv":      {},
	"markdown": {},
}

// CanonicalizeOutput validates and lower-cases an output format name.
func CanonicalizeOutput(raw string) (string, error) {
	out := strings.ToLower(strings.TrimSpace(raw))
	if out == "" {
		return "table", nil
	}
	if _, ok := outputFormats[out]; !ok {
		return "", fmt.Errorf("invalid output format: %s", raw)
	}
	return out, nil
}

// Normalize trims and validates the resolved settings that are not already
// covered by engine option validation.
func Normalize(values Settings) (Settings, error) {
	var err error
	values.Output, err = CanonicalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	if values.Truncate < 0 {
		return values, fmt.Errorf("truncate must be >= 0")
	}
	if values.MaxFileBytes < 0 {
		return values, fmt.Errorf("max_file_bytes must be >= 0")
	}
	return values, nil
}
