package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/todolint/internal/engine/opts"
)

// FromEnv builds a config layer from TODOLINT_* environment variables.
// getenv is injectable for tests.
func FromEnv(getenv func(string) string) (LintConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg LintConfig
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		*target = &list
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setList(&cfg.Terms, "TODOLINT_TERMS")
	setString(&cfg.Location, "TODOLINT_LOCATION")
	setString(&cfg.URL, "TODOLINT_URL")
	setString(&cfg.Dir, "TODOLINT_DIR")
	setList(&cfg.Paths, "TODOLINT_PATH")
	setList(&cfg.Excludes, "TODOLINT_EXCLUDE")
	setList(&cfg.DetectLangs, "TODOLINT_DETECT_LANGS")
	setBool(&cfg.ExcludeTypical, "TODOLINT_EXCLUDE_TYPICAL")
	setInt(&cfg.Truncate, "TODOLINT_TRUNCATE", 0, math.MaxInt)
	setInt(&cfg.MaxFileBytes, "TODOLINT_MAX_FILE_BYTES", 0, math.MaxInt)
	// Jobs gets its canonical bound in NormalizeAndValidate so every input
	// path shares the same error message.
	setInt(&cfg.Jobs, "TODOLINT_JOBS", 1, math.MaxInt)
	setString(&cfg.Output, "TODOLINT_OUTPUT")
	setString(&cfg.Color, "TODOLINT_COLOR")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
