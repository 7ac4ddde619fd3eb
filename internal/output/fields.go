package output

import (
	"fmt"

	"github.com/phyten/todolint/internal/engine"
)

// Fixed column set shared by the csv/markdown/tsv writers.
var headers = []string{"TERM", "LOCATION", "LANG", "KIND", "MESSAGE", "COMMENT"}

func Headers() []string {
	out := make([]string, len(headers))
	copy(out, headers)
	return out
}

func RowValues(it engine.Item) []string {
	return []string{
		it.Term,
		fmt.Sprintf("%s:%d", it.File, it.Line),
		it.Lang,
		it.Kind,
		it.Message,
		it.Comment,
	}
}
