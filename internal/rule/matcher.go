package rule

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTerms is the built-in warning-term set used when none are
// configured.
var DefaultTerms = []string{"todo", "fixme", "xxx"}

// Location selects where a warning term has to appear inside a comment.
type Location int

const (
	// LocationStart requires the term at the beginning of the comment,
	// ignoring leading whitespace.
	LocationStart Location = iota
	// LocationAnywhere accepts the term anywhere, bounded by word
	// boundaries where the term's own edges are word characters.
	LocationAnywhere
)

func (l Location) String() string {
	if l == LocationAnywhere {
		return "anywhere"
	}
	return "start"
}

// ParseLocation validates a configured location value. The empty string
// selects the default (start). Unknown values are a configuration error.
func ParseLocation(raw string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "start":
		return LocationStart, nil
	case "anywhere":
		return LocationAnywhere, nil
	default:
		return LocationStart, fmt.Errorf("invalid location: %q (want start or anywhere)", raw)
	}
}

// Matcher is the compiled pattern for a single warning term. Matchers are
// immutable once built and safe to share across goroutines.
type Matcher struct {
	Term string
	re   *regexp.Regexp
}

// FindMatch returns the byte range of the first match of the term pattern
// in text.
func (m Matcher) FindMatch(text string) (start, end int, ok bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Pattern exposes the compiled expression, mainly for diagnostics.
func (m Matcher) Pattern() string {
	return m.re.String()
}

// BuildMatchers compiles one matcher per term, preserving order. Order
// matters: classification stops at the first term that matches. An empty
// term list falls back to DefaultTerms.
func BuildMatchers(terms []string, loc Location) ([]Matcher, error) {
	if len(terms) == 0 {
		terms = DefaultTerms
	}
	out := make([]Matcher, 0, len(terms))
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			return nil, fmt.Errorf("warning terms must be non-empty strings")
		}
		re, err := compileTerm(term, loc)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", term, err)
		}
		out = append(out, Matcher{Term: term, re: re})
	}
	return out, nil
}

func compileTerm(term string, loc Location) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(term)

	// A trailing word boundary keeps "todo" from matching inside
	// "mastodon"; terms ending in punctuation ("FIX!") get none because
	// \b never sits between punctuation and space. A colon directly after
	// the term is consumed either way.
	suffix := ":?"
	if isWordChar(lastRune(term)) {
		suffix = `\b:?`
	}

	if loc == LocationStart {
		return regexp.Compile(`(?i)^\s*` + escaped + suffix)
	}

	prefix := ""
	if isWordChar(firstRune(term)) {
		prefix = `\b`
	}
	// The second alternative repeats the term unescaped with boundaries on
	// both sides, mirroring the upstream rule this check descends from.
	// See DESIGN.md before simplifying it away.
	return regexp.Compile(`(?i)` + prefix + escaped + suffix + `|\b` + term + `\b`)
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
