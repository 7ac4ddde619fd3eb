package config

import "strings"

// override returns the last explicitly-set value across layers, keeping def
// when no layer mentions the field.
func override[T any](def T, layers ...*T) T {
	out := def
	for _, v := range layers {
		if v != nil {
			out = *v
		}
	}
	return out
}

func overrideTrimmed(def string, layers ...*string) string {
	return strings.TrimSpace(override(def, layers...))
}

// overrideStrings treats an explicitly empty list as a reset to nothing
// rather than "unset", so a layer can cancel an inherited list.
func overrideStrings(def []string, layers ...*[]string) []string {
	out := cloneStrings(def)
	for _, v := range layers {
		if v == nil {
			continue
		}
		if len(*v) == 0 {
			out = []string{}
			continue
		}
		out = cloneStrings(*v)
	}
	return out
}
