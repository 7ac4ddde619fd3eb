package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/phyten/todolint/internal/engine"
	"github.com/phyten/todolint/internal/model"
)

func sampleItems() []engine.Item {
	return []engine.Item{
		{
			Term:    "TODO",
			Kind:    string(model.KindLine),
			Lang:    "go",
			File:    "internal/app.go",
			Line:    12,
			Col:     1,
			Message: "Undocumented TODO: wire retries",
			Comment: "// TODO wire retries <urgent>",
		},
		{
			Term:    "FIXME",
			Kind:    string(model.KindBlock),
			Lang:    "c",
			File:    "src/io.c",
			Line:    3,
			Col:     1,
			Message: "Undocumented TODO: handle | pipes",
			Comment: "fixme handle | pipes\nsecond line",
		},
	}
}

func TestRowValues(t *testing.T) {
	row := RowValues(sampleItems()[0])
	if len(row) != len(Headers()) {
		t.Fatalf("row width %d != header width %d", len(row), len(Headers()))
	}
	if row[1] != "internal/app.go:12" {
		t.Fatalf("location cell = %q", row[1])
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf strings.Builder
	if err := WriteNDJSON(&buf, sampleItems()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"term":"TODO"`) {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[0], "<urgent>") || strings.Contains(lines[0], `\u003c`) {
		t.Fatal("HTML escaping must be disabled")
	}
}

func TestWriteNDJSONEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteNDJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "" {
		t.Fatalf("empty input must write nothing, got %q", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, sampleItems()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "TERM,LOCATION,LANG,KIND,MESSAGE,COMMENT\r\n") {
		t.Fatalf("header or CRLF missing: %q", out)
	}
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output must parse back as CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d: %q", len(records), out)
	}
	// the multi-line comment survives quoting as a single record
	comment := records[2][5]
	if !strings.HasPrefix(comment, "fixme handle | pipes") || !strings.Contains(comment, "second line") {
		t.Fatalf("comment cell = %q", comment)
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	var buf strings.Builder
	if err := WriteMarkdownTable(&buf, sampleItems()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "| TERM | LOCATION | LANG | KIND | MESSAGE | COMMENT |" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "| --- | --- | --- | --- | --- | --- |" {
		t.Fatalf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[3], `handle \| pipes`) {
		t.Fatalf("pipes must be escaped: %q", lines[3])
	}
	if !strings.Contains(lines[3], "<br>second line") {
		t.Fatalf("newlines must become <br>: %q", lines[3])
	}
}
