package rule

import (
	"strings"
	"testing"

	"github.com/phyten/todolint/internal/model"
)

func mustMatchers(t *testing.T, terms []string, loc Location) []Matcher {
	t.Helper()
	matchers, err := BuildMatchers(terms, loc)
	if err != nil {
		t.Fatal(err)
	}
	return matchers
}

func lineComment(text string) model.Comment {
	return model.Comment{Kind: model.KindLine, Text: text}
}

func TestClassifyBasicFinding(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "")
	finding, ok := cls.Classify(lineComment(" TODO: refactor this"))
	if !ok {
		t.Fatal("expected a finding")
	}
	if finding.Term != "todo" {
		t.Fatalf("Term = %q, want todo", finding.Term)
	}
	// the colon belongs to the matched span, so the remainder starts clean
	if finding.Message != "Undocumented TODO: refactor this" {
		t.Fatalf("Message = %q", finding.Message)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "")
	cases := []string{
		"",
		"   ",
		"regular comment",
		"mastodon facts",
		"see the todo list", // start mode: not at the beginning
	}
	for _, text := range cases {
		if _, ok := cls.Classify(lineComment(text)); ok {
			t.Fatalf("comment %q should not produce a finding", text)
		}
	}
}

func TestClassifyTrackerExemption(t *testing.T) {
	url := "https://example.com/issues/4"
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), url)

	if _, ok := cls.Classify(lineComment(" TODO: see https://example.com/issues/4")); ok {
		t.Fatal("comment referencing the tracker must be exempt")
	}
	if _, ok := cls.Classify(lineComment(" TODO: see HTTPS://EXAMPLE.COM/ISSUES/4")); ok {
		t.Fatal("exemption check must be case-insensitive")
	}
	if _, ok := cls.Classify(lineComment(" TODO: no reference here")); !ok {
		t.Fatal("otherwise-identical comment without the URL must be flagged")
	}
}

func TestClassifyNoTrackerMeansNoExemption(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "  ")
	if _, ok := cls.Classify(lineComment(" TODO: see https://example.com/issues/4")); !ok {
		t.Fatal("with no tracker configured, every matched comment is reported")
	}
}

func TestClassifyDirectiveComments(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo", "eslint"}, LocationAnywhere), "")

	directives := []model.Comment{
		{Kind: model.KindLine, Text: " eslint-disable-next-line no-warning-comments"},
		{Kind: model.KindLine, Text: "eslint-disable todo"},
		{Kind: model.KindBlock, Text: " global someVar "},
		{Kind: model.KindBlock, Text: " eslint no-warning-comments: 0 "},
		{Kind: model.KindBlock, Text: "eslint-enable"},
	}
	for _, c := range directives {
		if _, ok := cls.Classify(c); ok {
			t.Fatalf("directive comment %q must never be flagged", c.Text)
		}
	}

	// the prefix set is kind-specific: "global" only shields block comments
	if _, ok := cls.Classify(model.Comment{Kind: model.KindLine, Text: "global todo cleanup"}); !ok {
		t.Fatal(`line comment starting with "global" is not a directive`)
	}
}

func TestClassifyFirstTermWins(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"fixme", "todo"}, LocationAnywhere), "")
	finding, ok := cls.Classify(lineComment("todo and fixme in one place"))
	if !ok {
		t.Fatal("expected a finding")
	}
	if finding.Term != "fixme" {
		t.Fatalf("configuration order must break ties, got term %q", finding.Term)
	}
}

func TestClassifyRemovesOnlyFirstMatch(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationAnywhere), "")
	finding, ok := cls.Classify(lineComment(" todo todo later"))
	if !ok {
		t.Fatal("expected a finding")
	}
	if finding.Message != "Undocumented TODO: todo later" {
		t.Fatalf("Message = %q", finding.Message)
	}
}

func TestClassifyTruncation(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "")

	long := strings.Repeat("a", 61)
	finding, ok := cls.Classify(lineComment(" TODO: " + long))
	if !ok {
		t.Fatal("expected a finding")
	}
	want := "Undocumented TODO: " + strings.Repeat("a", 60) + "..."
	if finding.Message != want {
		t.Fatalf("Message = %q, want %q", finding.Message, want)
	}

	exact := strings.Repeat("b", 60)
	finding, ok = cls.Classify(lineComment(" TODO: " + exact))
	if !ok {
		t.Fatal("expected a finding")
	}
	if finding.Message != "Undocumented TODO: "+exact {
		t.Fatalf("a 60-character remainder must not be truncated: %q", finding.Message)
	}
}

func TestClassifyEmptyRemainder(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "")
	finding, ok := cls.Classify(lineComment(" TODO:"))
	if !ok {
		t.Fatal("expected a finding")
	}
	if finding.Message != "Undocumented TODO:" {
		t.Fatalf("Message = %q", finding.Message)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "")
	c := lineComment(" TODO: stable output")
	first, ok1 := cls.Classify(c)
	second, ok2 := cls.Classify(c)
	if ok1 != ok2 || first != second {
		t.Fatalf("classification is not idempotent: %+v vs %+v", first, second)
	}
}

func TestClassifyBlockComment(t *testing.T) {
	cls := NewClassifier(mustMatchers(t, []string{"todo"}, LocationStart), "")
	c := model.Comment{Kind: model.KindBlock, Text: "\n todo: handle errors\n"}
	finding, ok := cls.Classify(c)
	if !ok {
		t.Fatal("leading newlines count as whitespace in start mode")
	}
	if finding.Message != "Undocumented TODO: handle errors" {
		t.Fatalf("Message = %q", finding.Message)
	}
}
