package plots

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OutputCSV writes t with one column per label and one row per key.
// Missing values are written as 0.
func OutputCSV(w io.Writer, t *Table) error {
	keys, _ := ConsolidateKeys(t.Rows(), true)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Label"}, t.Labels()...)); err != nil {
		return err
	}
	for _, k := range keys {
		rec := make([]string, 0, t.Len()+1)
		rec = append(rec, k)
		for _, l := range t.Labels() {
			rec = append(rec, formatFloat(t.Value(l, k)))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PrintErrors writes, for every key, its value under each label.
func PrintErrors(w io.Writer, t *Table, keys []string) error {
	for _, k := range keys {
		parts := make([]string, 0, t.Len())
		for _, l := range t.Labels() {
			parts = append(parts, fmt.Sprintf("%s: %s", l, formatFloat(t.Value(l, k))))
		}
		if _, err := fmt.Fprintf(w, "%s: {%s}\n", k, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
