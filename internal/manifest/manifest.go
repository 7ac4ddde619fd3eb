// Package manifest discovers a project's default issue-tracker reference
// from its package manifest. The lookup is a collaborator injected into the
// scan engine so classification itself never reads ambient files.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const manifestName = "package.json"

type manifestFields struct {
	Bugs       json.RawMessage `json:"bugs"`
	Repository json.RawMessage `json:"repository"`
}

// Lookup walks upward from dir to the filesystem root looking for a
// manifest and returns the tracker reference it declares: the bugs field
// first, falling back to repository; each may be a plain string or an
// object carrying a url. Every failure mode (no manifest, unreadable,
// malformed JSON) degrades to "not found" — a missing tracker reference
// only means no comment can be exempt, never a fatal error.
func Lookup(dir string) (string, bool) {
	path, ok := find(dir)
	if !ok {
		return "", false
	}
	return FromFile(path)
}

// FromFile reads the tracker reference out of a specific manifest file.
func FromFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var f manifestFields
	if err := json.Unmarshal(data, &f); err != nil {
		return "", false
	}
	if url, ok := trackerFrom(f.Bugs); ok {
		return url, true
	}
	return trackerFrom(f.Repository)
}

func trackerFrom(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		plain = strings.TrimSpace(plain)
		return plain, plain != ""
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		url := strings.TrimSpace(obj.URL)
		return url, url != ""
	}
	return "", false
}

func find(dir string) (string, bool) {
	start := strings.TrimSpace(dir)
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(abs, manifestName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}
