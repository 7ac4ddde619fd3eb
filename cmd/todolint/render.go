package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/todolint/internal/engine"
	"github.com/phyten/todolint/internal/termcolor"
	"github.com/phyten/todolint/internal/textutil"
)

var tableHeaders = []string{"TERM", "LOCATION", "LANG", "MESSAGE"}

// flatten keeps one physical line per finding. Messages built from block
// comments can carry embedded newlines, which would break row alignment
// and the one-record-per-line TSV contract.
func flatten(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// printTable renders findings as an aligned table. Column widths are
// computed on the plain text so ANSI paint never skews the layout.
func printTable(w io.Writer, res *engine.Result, colorOn bool) {
	if res.Total == 0 {
		fmt.Fprintln(w, "no undocumented warning comments")
		return
	}
	rows := make([][]string, 0, len(res.Items))
	for _, it := range res.Items {
		rows = append(rows, []string{
			it.Term,
			fmt.Sprintf("%s:%d", it.File, it.Line),
			it.Lang,
			flatten(it.Message),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := textutil.VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	fmt.Fprintln(w, joinPadded(tableHeaders, widths, nil))
	paints := []func(string, bool) string{
		termcolor.Term,
		termcolor.Location,
		termcolor.Faint,
		nil,
	}
	for _, row := range rows {
		line := make([]string, len(row))
		for i, cell := range row {
			padded := textutil.PadRight(cell, widths[i])
			if colorOn && paints[i] != nil && cell != "" {
				// paint after padding so width math stays plain-text
				padded = paints[i](cell, true) + padded[len(cell):]
			}
			line[i] = padded
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " "))
	}
	fmt.Fprintf(w, "\n%d finding(s) in %dms", res.Total, res.ElapsedMS)
	if res.Tracker != "" {
		fmt.Fprintf(w, " (tracker: %s, from %s)", res.Tracker, res.TrackerSource)
	}
	fmt.Fprintln(w)
}

func joinPadded(cells []string, widths []int, _ []func(string, bool) string) string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = textutil.PadRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(out, "  "), " ")
}

func printTSV(w io.Writer, res *engine.Result) {
	fmt.Fprintln(w, strings.Join(tableHeaders, "\t"))
	for _, it := range res.Items {
		fmt.Fprintln(w, strings.Join([]string{
			it.Term,
			fmt.Sprintf("%s:%d", it.File, it.Line),
			it.Lang,
			flatten(it.Message),
		}, "\t"))
	}
}
