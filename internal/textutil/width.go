package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Truncate limits s to at most max grapheme clusters. When content is cut
// and marker is non-empty, marker is appended after the kept portion (the
// kept portion itself stays exactly max graphemes long).
func Truncate(s string, max int, marker string) string {
	if max <= 0 {
		if s == "" {
			return ""
		}
		return marker
	}
	g := uniseg.NewGraphemes(s)
	var b strings.Builder
	count := 0
	for g.Next() {
		if count == max {
			return b.String() + marker
		}
		b.WriteString(g.Str())
		count++
	}
	return s
}

// VisibleWidth returns the terminal display width of s (wcwidth-based,
// grapheme aware).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateByWidth truncates s so its visible width does not exceed w,
// without splitting grapheme clusters. When truncation happens and ellipsis
// fits within w, it is appended in place of the removed tail.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	ellW := VisibleWidth(ellipsis)
	limit := w
	if ellW <= w {
		limit = w - ellW
	} else {
		ellipsis = ""
	}
	g := uniseg.NewGraphemes(s)
	var b strings.Builder
	used := 0
	for g.Next() {
		segW := runewidth.StringWidth(g.Str())
		if used+segW > limit {
			break
		}
		b.WriteString(g.Str())
		used += segW
	}
	return b.String() + ellipsis
}

// PadRight pads s with spaces so the visible width equals w.
func PadRight(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
