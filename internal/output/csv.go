package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/todolint/internal/engine"
)

// WriteCSV renders items as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, items []engine.Item) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers()); err != nil {
		return err
	}
	for _, it := range items {
		if err := writer.Write(RowValues(it)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
