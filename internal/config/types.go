package config

import (
	"strings"

	"github.com/phyten/todolint/internal/engine"
)

// LintConfig is one configuration layer (file, env or flags). Pointer
// fields distinguish "not set" from zero values so later layers only
// override what they actually mention.
type LintConfig struct {
	Terms          *[]string `yaml:"terms" toml:"terms" json:"terms"`
	Location       *string   `yaml:"location" toml:"location" json:"location"`
	URL            *string   `yaml:"url" toml:"url" json:"url"`
	Dir            *string   `yaml:"dir" toml:"dir" json:"dir"`
	Paths          *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	DetectLangs    *[]string `yaml:"detect_langs" toml:"detect_langs" json:"detect_langs"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Truncate       *int      `yaml:"truncate" toml:"truncate" json:"truncate"`
	MaxFileBytes   *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Jobs           *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	Output         *string   `yaml:"output" toml:"output" json:"output"`
	Color          *string   `yaml:"color" toml:"color" json:"color"`
}

// Config is the file-level schema. Keys may live in a [lint] section or at
// the top level.
type Config struct {
	Lint LintConfig `yaml:"lint" toml:"lint" json:"lint"`
}

// Settings is the fully resolved configuration after merging all layers.
type Settings struct {
	Terms          []string
	Location       string
	URL            string
	Dir            string
	Paths          []string
	Excludes       []string
	DetectLangs    []string
	ExcludeTypical bool
	Truncate       int
	MaxFileBytes   int
	Jobs           int
	Output         string
	Color          string
}

// SettingsFromOptions seeds a Settings value from baseline engine options.
func SettingsFromOptions(opts engine.Options) Settings {
	return Settings{
		Terms:          cloneStrings(opts.Terms),
		Location:       opts.Location,
		URL:            opts.URL,
		Dir:            opts.Dir,
		Paths:          cloneStrings(opts.Paths),
		Excludes:       cloneStrings(opts.Excludes),
		DetectLangs:    cloneStrings(opts.DetectLangs),
		ExcludeTypical: opts.ExcludeTypical,
		Truncate:       opts.TruncComment,
		MaxFileBytes:   opts.MaxFileBytes,
		Jobs:           opts.Jobs,
		Output:         "table",
		Color:          "auto",
	}
}

// ApplyToOptions copies the resolved values back onto engine options.
func (s Settings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Terms = cloneStrings(s.Terms)
	opts.Location = s.Location
	opts.URL = s.URL
	if trimmed := strings.TrimSpace(s.Dir); trimmed != "" {
		opts.Dir = trimmed
	}
	opts.Paths = cloneStrings(s.Paths)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.DetectLangs = cloneStrings(s.DetectLangs)
	opts.ExcludeTypical = s.ExcludeTypical
	opts.TruncComment = s.Truncate
	opts.MaxFileBytes = s.MaxFileBytes
	opts.Jobs = s.Jobs
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
