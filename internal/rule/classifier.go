package rule

import (
	"regexp"
	"strings"

	"github.com/phyten/todolint/internal/model"
	"github.com/phyten/todolint/internal/textutil"
)

const (
	messagePrefix    = "Undocumented TODO:"
	maxContext       = 60
	truncationMarker = "..."
)

// Inline-configuration comments consumed by the analysis host itself.
// Flagging these would make the linter fight its own suppression
// directives, so they are skipped before any term matching.
var blockDirectivePrefixes = []string{"global ", "eslint ", "eslint-"}

// Classifier applies a compiled matcher set plus an optional tracker
// exemption to individual comments. It holds no mutable state; a single
// instance may be shared across concurrent scans.
type Classifier struct {
	matchers []Matcher
	tracker  *regexp.Regexp
}

// NewClassifier builds a classifier. trackerURL is matched as a
// case-insensitive literal substring against the full comment text; when it
// is empty, no comment is ever exempt.
func NewClassifier(matchers []Matcher, trackerURL string) *Classifier {
	c := &Classifier{matchers: matchers}
	if url := strings.TrimSpace(trackerURL); url != "" {
		c.tracker = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(url))
	}
	return c
}

// Classify evaluates one comment. It reports the finding and true when the
// comment is an undocumented warning comment, and false otherwise (no term
// matched, directive comment, or tracker reference present).
func (c *Classifier) Classify(comment model.Comment) (model.Finding, bool) {
	if isDirective(comment) {
		return model.Finding{}, false
	}
	for _, m := range c.matchers {
		start, end, ok := m.FindMatch(comment.Text)
		if !ok {
			continue
		}
		if c.tracker != nil && c.tracker.MatchString(comment.Text) {
			return model.Finding{}, false
		}
		return model.Finding{
			Term:    m.Term,
			Message: buildMessage(comment.Text, start, end),
		}, true
	}
	return model.Finding{}, false
}

// buildMessage removes the matched span (first occurrence only), trims the
// rest and keeps at most maxContext graphemes so output stays scannable.
func buildMessage(text string, start, end int) string {
	remainder := strings.TrimSpace(text[:start] + text[end:])
	remainder = textutil.Truncate(remainder, maxContext, truncationMarker)
	if remainder == "" {
		return messagePrefix
	}
	return messagePrefix + " " + remainder
}

func isDirective(c model.Comment) bool {
	text := strings.TrimSpace(c.Text)
	switch c.Kind {
	case model.KindLine:
		return strings.HasPrefix(text, "eslint-")
	case model.KindBlock:
		for _, prefix := range blockDirectivePrefixes {
			if strings.HasPrefix(text, prefix) {
				return true
			}
		}
	}
	return false
}
