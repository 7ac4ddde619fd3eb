// Package opts centralizes defaulting, parsing and validation of engine
// options so the CLI flags, config layers and the HTTP query surface all
// agree on semantics.
package opts

import (
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/todolint/internal/engine"
	"github.com/phyten/todolint/internal/manifest"
	"github.com/phyten/todolint/internal/rule"
)

const maxJobs = 64

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and HTTP inputs.
func Defaults(dir string) engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Terms:          nil, // nil = rule.DefaultTerms
		Location:       "start",
		URL:            "",
		Dir:            dir,
		ExcludeTypical: true,
		Jobs:           jobs,
		MaxFileBytes:   0,
		TruncComment:   0,
		TrackerLookup:  manifest.Lookup,
	}
}

// NormalizeAndValidate rejects configuration errors before any file is
// touched: an unknown location, uncompilable terms, or out-of-range knobs.
func NormalizeAndValidate(o *engine.Options) error {
	loc, err := rule.ParseLocation(o.Location)
	if err != nil {
		return err
	}
	o.Location = loc.String()
	if _, err := rule.BuildMatchers(o.Terms, loc); err != nil {
		return err
	}
	if o.Jobs < 1 {
		o.Jobs = 1
	}
	if o.Jobs > maxJobs {
		o.Jobs = maxJobs
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}
	if o.TruncComment < 0 {
		return fmt.Errorf("truncate must be >= 0")
	}
	return nil
}

// ApplyQueryToOptions copies recognized values from an HTTP query string
// into the provided options. Validation happens separately via
// NormalizeAndValidate. The scan root is deliberately not overridable.
func ApplyQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	if raw, ok := lastValue(q["terms"]); ok {
		out.Terms = SplitMulti([]string{raw})
	}
	if raw, ok := lastValue(q["location"]); ok {
		out.Location = raw
	}
	if raw, ok := lastValue(q["url"]); ok {
		out.URL = raw
	}
	if raw, ok := lastValue(q["exclude"]); ok {
		out.Excludes = SplitMulti([]string{raw})
	}
	if raw, ok := lastValue(q["path"]); ok {
		out.Paths = SplitMulti([]string{raw})
	}
	if raw, ok := lastValue(q["detect_langs"]); ok {
		out.DetectLangs = SplitMulti([]string{raw})
	}
	if raw, ok := lastValue(q["exclude_typical"]); ok {
		v, err := ParseBool(raw, "exclude_typical")
		if err != nil {
			return out, err
		}
		out.ExcludeTypical = v
	}
	if raw, ok := lastValue(q["truncate"]); ok {
		n, err := ParseIntInRange(raw, "truncate", 0, 1<<20)
		if err != nil {
			return out, err
		}
		out.TruncComment = n
	}
	if raw, ok := lastValue(q["max_file_bytes"]); ok {
		n, err := ParseIntInRange(raw, "max_file_bytes", 0, 1<<31-1)
		if err != nil {
			return out, err
		}
		out.MaxFileBytes = n
	}
	if raw, ok := lastValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	return out, nil
}

func lastValue(values []string) (string, bool) {
	for i := len(values) - 1; i >= 0; i-- {
		if v := strings.TrimSpace(values[i]); v != "" {
			return v, true
		}
	}
	return "", false
}

// ParseBool accepts the usual CLI bool literals (1/0, true/false, yes/no,
// on/off), case-insensitively.
func ParseBool(raw, field string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value for %s: %q", field, raw)
}

// ParseIntInRange parses raw as an integer within [min, max].
func ParseIntInRange(raw, field string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", field, raw)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", field, min, max)
	}
	return n, nil
}

// SplitMulti splits comma-separated entries, trimming whitespace and
// dropping empties, so repeatable flags and single comma-joined values
// behave identically.
func SplitMulti(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
