package engine

import (
	"testing"

	"github.com/phyten/todolint/internal/model"
)

func TestExtractLineComments(t *testing.T) {
	src := "package main\n\n// TODO implement\nx := 1 // trailing note\n"
	style, _ := styleForLanguage("go")
	comments := extractComments([]byte(src), style)
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d: %+v", len(comments), comments)
	}
	if comments[0].Kind != model.KindLine || comments[0].Text != " TODO implement" {
		t.Fatalf("unexpected first comment: %+v", comments[0])
	}
	if comments[0].Span.StartLine != 3 || comments[0].Span.StartCol != 1 {
		t.Fatalf("unexpected span: %+v", comments[0].Span)
	}
	if comments[1].Text != " trailing note" || comments[1].Span.StartLine != 4 {
		t.Fatalf("unexpected second comment: %+v", comments[1])
	}
}

func TestExtractBlockComment(t *testing.T) {
	src := "a\n/* first\n second\n*/\nb /* inline */ c\n"
	style, _ := styleForLanguage("c")
	comments := extractComments([]byte(src), style)
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	multi := comments[0]
	if multi.Kind != model.KindBlock {
		t.Fatalf("expected block kind, got %s", multi.Kind)
	}
	if multi.Text != " first\n second\n" {
		t.Fatalf("block text = %q", multi.Text)
	}
	if multi.Span.StartLine != 2 || multi.Span.EndLine != 4 {
		t.Fatalf("block span = %+v", multi.Span)
	}
	if comments[1].Text != " inline " || comments[1].Span.StartLine != 5 {
		t.Fatalf("inline block = %+v", comments[1])
	}
}

func TestExtractUnterminatedBlock(t *testing.T) {
	src := "/* dangling\ntodo here"
	style, _ := styleForLanguage("c")
	comments := extractComments([]byte(src), style)
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].Kind != model.KindBlock || comments[0].Text != " dangling\ntodo here\n" {
		t.Fatalf("unexpected comment: %+v", comments[0])
	}
}

func TestExtractShebangPseudoToken(t *testing.T) {
	src := "#!/bin/sh\n# TODO harden\n"
	style, _ := styleForLanguage("shell")
	comments := extractComments([]byte(src), style)
	if len(comments) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(comments))
	}
	if comments[0].Kind != model.KindShebang {
		t.Fatalf("first token should be the shebang, got %s", comments[0].Kind)
	}
	if comments[0].Kind.IsComment() {
		t.Fatal("shebang must be filtered out before classification")
	}
	if comments[1].Kind != model.KindLine || comments[1].Text != " TODO harden" {
		t.Fatalf("unexpected second token: %+v", comments[1])
	}
}

func TestExtractCRLF(t *testing.T) {
	src := "// TODO one\r\n// two\r\n"
	style, _ := styleForLanguage("go")
	comments := extractComments([]byte(src), style)
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != " TODO one" {
		t.Fatalf("carriage return must be stripped, got %q", comments[0].Text)
	}
}
