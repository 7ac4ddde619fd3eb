package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/todolint/internal/engine/opts"
)

// Accepted spellings for each canonical key. Keys may appear inside a
// [lint] section or at the top level of the file.
var lintKeyMap = map[string]string{
	"term":             "terms",
	"terms":            "terms",
	"location":         "location",
	"url":              "url",
	"tracker_url":      "url",
	"dir":              "dir",
	"root":             "dir",
	"path":             "path",
	"paths":            "path",
	"exclude":          "exclude",
	"excludes":         "exclude",
	"detect_langs":     "detect_langs",
	"detect_languages": "detect_langs",
	"exclude_typical":  "exclude_typical",
	"truncate":         "truncate",
	"max_file_bytes":   "max_file_bytes",
	"max_bytes":        "max_file_bytes",
	"jobs":             "jobs",
	"output":           "output",
	"color":            "color",
}

// Load parses the config file at path, picking the decoder by extension.
// An empty path yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	section := make(map[string]any)

	if block, ok := raw["lint"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("lint: %w", err)
		}
		for key, value := range sub {
			canonical, ok := lintKeyMap[normalizeKey(key)]
			if !ok {
				return cfg, fmt.Errorf("unknown lint key: %s", key)
			}
			section[canonical] = value
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		if norm == "lint" {
			continue
		}
		canonical, ok := lintKeyMap[norm]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		section[canonical] = value
	}

	if err := assignLint(section, &cfg.Lint); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func assignLint(section map[string]any, dst *LintConfig) error {
	for key, value := range section {
		switch key {
		case "terms":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Terms = &list
		case "location":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Location = &str
		case "url":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.URL = &str
		case "dir":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Dir = &str
		case "path":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Paths = &list
		case "exclude":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Excludes = &list
		case "detect_langs":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.DetectLangs = &list
		case "exclude_typical":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.ExcludeTypical = &b
		case "truncate":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Truncate = &n
		case "max_file_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxFileBytes = &n
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return engineopts.SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
