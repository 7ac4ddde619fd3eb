package rule

import (
	"strings"
	"testing"
)

func TestParseLocation(t *testing.T) {
	cases := []struct {
		raw     string
		want    Location
		wantErr bool
	}{
		{raw: "", want: LocationStart},
		{raw: "start", want: LocationStart},
		{raw: " Anywhere ", want: LocationAnywhere},
		{raw: "everywhere", wantErr: true},
		{raw: "begin", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseLocation(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLocation(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLocation(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLocation(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestBuildMatchersDefaults(t *testing.T) {
	matchers, err := BuildMatchers(nil, LocationStart)
	if err != nil {
		t.Fatal(err)
	}
	if len(matchers) != len(DefaultTerms) {
		t.Fatalf("expected %d default matchers, got %d", len(DefaultTerms), len(matchers))
	}
	for i, m := range matchers {
		if m.Term != DefaultTerms[i] {
			t.Fatalf("matcher %d is %q, want %q (order must be preserved)", i, m.Term, DefaultTerms[i])
		}
	}
}

func TestBuildMatchersRejectsEmptyTerm(t *testing.T) {
	if _, err := BuildMatchers([]string{"todo", "  "}, LocationStart); err == nil {
		t.Fatal("expected error for blank term")
	}
}

func TestStartModeMatching(t *testing.T) {
	matchers, err := BuildMatchers([]string{"todo"}, LocationStart)
	if err != nil {
		t.Fatal(err)
	}
	m := matchers[0]
	cases := []struct {
		name string
		text string
		want bool
	}{
		{name: "PlainTerm", text: "todo", want: true},
		{name: "LeadingWhitespace", text: "   TODO fix later", want: true},
		{name: "TrailingColon", text: " TODO: refactor", want: true},
		{name: "CaseInsensitive", text: " ToDo later", want: true},
		{name: "MidComment", text: "this is a todo", want: false},
		{name: "EmbeddedWord", text: "mastodon is a bird", want: false},
		{name: "PrefixedWord", text: "todos galore", want: false},
		{name: "Empty", text: "", want: false},
		{name: "WhitespaceOnly", text: "   ", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, got := m.FindMatch(tc.text); got != tc.want {
				t.Fatalf("FindMatch(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestStartModeConsumesColon(t *testing.T) {
	matchers, err := BuildMatchers([]string{"todo"}, LocationStart)
	if err != nil {
		t.Fatal(err)
	}
	start, end, ok := matchers[0].FindMatch(" TODO: refactor this")
	if !ok {
		t.Fatal("expected match")
	}
	if start != 0 {
		t.Fatalf("match should begin at 0, got %d", start)
	}
	if got := " TODO: refactor this"[start:end]; got != " TODO:" {
		t.Fatalf("matched span %q, want %q", got, " TODO:")
	}
}

func TestPunctuationTermSkipsTrailingBoundary(t *testing.T) {
	matchers, err := BuildMatchers([]string{"FIX!"}, LocationStart)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := matchers[0].FindMatch("FIX! blah"); !ok {
		t.Fatal(`"FIX! blah" should match a term ending in punctuation`)
	}
	if _, _, ok := matchers[0].FindMatch("FIXED blah"); ok {
		t.Fatal(`"FIXED blah" must not match "FIX!"`)
	}
}

func TestAnywhereModeMatching(t *testing.T) {
	matchers, err := BuildMatchers([]string{"fixme"}, LocationAnywhere)
	if err != nil {
		t.Fatal(err)
	}
	m := matchers[0]
	cases := []struct {
		name string
		text string
		want bool
	}{
		{name: "MidComment", text: "this is a fixme later", want: true},
		{name: "AtStart", text: "fixme now", want: true},
		{name: "WithColon", text: "a fixme: do it", want: true},
		{name: "EmbeddedWord", text: "prefixmeddled", want: false},
		{name: "WordPrefix", text: "unfixme", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, got := m.FindMatch(tc.text); got != tc.want {
				t.Fatalf("FindMatch(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestAnywhereModeRawTermAlternative(t *testing.T) {
	// The anywhere pattern alternates with the unescaped term bounded on
	// both sides. A term whose metacharacters survive escaping in the
	// first branch can therefore fail to compile via the second.
	if _, err := BuildMatchers([]string{"c++"}, LocationAnywhere); err == nil {
		t.Fatal(`expected a compile error for term "c++" in anywhere mode`)
	}
	if _, err := BuildMatchers([]string{"c++"}, LocationStart); err != nil {
		t.Fatalf(`start mode escapes the term fully, got error: %v`, err)
	}
}

func TestMatcherIsReusable(t *testing.T) {
	matchers, err := BuildMatchers([]string{"todo"}, LocationStart)
	if err != nil {
		t.Fatal(err)
	}
	text := " TODO: " + strings.Repeat("x", 100)
	s1, e1, ok1 := matchers[0].FindMatch(text)
	s2, e2, ok2 := matchers[0].FindMatch(text)
	if s1 != s2 || e1 != e2 || ok1 != ok2 {
		t.Fatalf("matcher not idempotent: (%d,%d,%v) vs (%d,%d,%v)", s1, e1, ok1, s2, e2, ok2)
	}
}
