package engine

import (
	"strings"

	"github.com/phyten/todolint/internal/model"
)

// extractComments splits file content into comment tokens using the
// language's comment syntax. A leading #! line is emitted as a shebang
// pseudo-token so callers can filter it out before classification. The
// extractor is deliberately line oriented: comment markers inside string
// literals are treated as comments, matching the scanning behavior users
// expect from grep-style TODO tooling.
func extractComments(data []byte, style commentStyle) []model.Comment {
	lines := strings.Split(string(data), "\n")
	var comments []model.Comment

	type blockState struct {
		delims    blockDelims
		startLine int
		startCol  int
		buf       strings.Builder
	}
	var state *blockState

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSuffix(raw, "\r")

		if lineNo == 1 && strings.HasPrefix(line, "#!") {
			comments = append(comments, model.Comment{
				Kind: model.KindShebang,
				Text: line[2:],
				Span: model.Span{StartLine: 1, StartCol: 1, EndLine: 1},
			})
			continue
		}

		if state != nil {
			if idx := strings.Index(line, state.delims.end); idx >= 0 {
				state.buf.WriteString(line[:idx])
				comments = append(comments, model.Comment{
					Kind: model.KindBlock,
					Text: state.buf.String(),
					Span: model.Span{StartLine: state.startLine, StartCol: state.startCol, EndLine: lineNo},
				})
				state = nil
			} else {
				state.buf.WriteString(line)
				state.buf.WriteByte('\n')
			}
			continue
		}

		if started := func() bool {
			for _, b := range style.block {
				idx := strings.Index(line, b.start)
				if idx < 0 {
					continue
				}
				rest := line[idx+len(b.start):]
				if endIdx := strings.Index(rest, b.end); endIdx >= 0 {
					comments = append(comments, model.Comment{
						Kind: model.KindBlock,
						Text: rest[:endIdx],
						Span: model.Span{StartLine: lineNo, StartCol: idx + 1, EndLine: lineNo},
					})
					return true
				}
				state = &blockState{delims: b, startLine: lineNo, startCol: idx + 1}
				state.buf.WriteString(rest)
				state.buf.WriteByte('\n')
				return true
			}
			return false
		}(); started {
			continue
		}

		for _, prefix := range style.linePrefixes {
			idx := strings.Index(line, prefix)
			if idx < 0 {
				continue
			}
			comments = append(comments, model.Comment{
				Kind: model.KindLine,
				Text: line[idx+len(prefix):],
				Span: model.Span{StartLine: lineNo, StartCol: idx + 1, EndLine: lineNo},
			})
			break
		}
	}

	// unterminated block at EOF still counts
	if state != nil {
		comments = append(comments, model.Comment{
			Kind: model.KindBlock,
			Text: state.buf.String(),
			Span: model.Span{StartLine: state.startLine, StartCol: state.startCol, EndLine: len(lines)},
		})
	}
	return comments
}
