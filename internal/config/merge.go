package config

import "strings"

// Merge layers later configs over base. Precedence is the caller's layer
// order: defaults < file < env < flags.
func Merge(base Settings, layers ...LintConfig) Settings {
	out := base
	for _, layer := range layers {
		out.Terms = overrideStrings(out.Terms, layer.Terms)
		out.Location = overrideTrimmed(out.Location, layer.Location)
		out.URL = overrideTrimmed(out.URL, layer.URL)
		out.Dir = overrideTrimmed(out.Dir, layer.Dir)
		out.Paths = overrideStrings(out.Paths, layer.Paths)
		out.Excludes = overrideStrings(out.Excludes, layer.Excludes)
		out.DetectLangs = overrideStrings(out.DetectLangs, layer.DetectLangs)
		out.ExcludeTypical = override(out.ExcludeTypical, layer.ExcludeTypical)
		out.Truncate = override(out.Truncate, layer.Truncate)
		out.MaxFileBytes = override(out.MaxFileBytes, layer.MaxFileBytes)
		out.Jobs = override(out.Jobs, layer.Jobs)
		out.Output = overrideTrimmed(out.Output, layer.Output)
		out.Color = overrideTrimmed(out.Color, layer.Color)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	if strings.TrimSpace(out.Location) == "" {
		out.Location = "start"
	}
	return out
}
