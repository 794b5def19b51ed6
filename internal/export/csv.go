// Package export serializes ledger data for files leaving the app.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// csvHeader matches the column layout the app has always exported.
var csvHeader = []string{"Date", "Type", "Category", "Amount", "Note"}

// WriteCSV writes one row per transaction: Date (date-only), Type,
// Category, Amount, Note, with a header row.
//
// The legacy format does not quote-escape fields, so commas inside notes
// misalign columns; that is a known limitation consumers rely on spotting.
// rfcQuoting opts into standard CSV quoting as an explicit behavior
// change.
func WriteCSV(w io.Writer, txns []model.Transaction, rfcQuoting bool) error {
	if rfcQuoting {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		for _, t := range txns {
			if err := cw.Write(csvRow(t)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")+"\n"); err != nil {
		return err
	}
	for _, t := range txns {
		if _, err := io.WriteString(w, strings.Join(csvRow(t), ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func csvRow(t model.Transaction) []string {
	return []string{
		t.DateKey(),
		string(t.Type),
		t.Category,
		t.Amount.StringFixed(2),
		t.Note,
	}
}

// FilterByTag keeps transactions whose note mentions the tag; an empty
// tag keeps everything.
func FilterByTag(txns []model.Transaction, tag string) []model.Transaction {
	if tag == "" {
		return txns
	}
	var out []model.Transaction
	for _, t := range txns {
		if model.HasTag(t.Note, tag) {
			out = append(out, t)
		}
	}
	return out
}

// Filename suggests a dated export file name.
func Filename(prefix, date, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, date, ext)
}
