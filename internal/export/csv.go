// Package export flattens heterogeneous response rows into tabular form
// with a deterministic column contract, so repeated exports of the same
// data diff cleanly.
package export

import (
	"sort"
	"strings"
	"time"

	"angket/domain/response"
	"angket/domain/schema"
)

// Columns derives the export column order for a field list and row set:
// the three fixed columns, respondent attribute keys sorted
// alphabetically, then answer keys with schema fields first (schema order)
// followed by keys present only in the data, in first-encountered order
// across rows.
func Columns(fields []schema.FieldDescriptor, rows []response.Row) (respondentKeys, answerKeys []string) {
	seenRespondent := make(map[string]bool)
	for _, row := range rows {
		for key := range row.Respondent {
			if !seenRespondent[key] {
				seenRespondent[key] = true
				respondentKeys = append(respondentKeys, key)
			}
		}
	}
	sort.Strings(respondentKeys)

	seenAnswer := make(map[string]bool)
	for _, f := range fields {
		if !seenAnswer[f.Name] {
			seenAnswer[f.Name] = true
			answerKeys = append(answerKeys, f.Name)
		}
	}
	for _, row := range rows {
		// Map iteration order is random; collect and sort the unseen keys of
		// each row so "first-encountered" stays deterministic per row.
		var extras []string
		for key := range row.Answers {
			if !seenAnswer[key] {
				extras = append(extras, key)
			}
		}
		sort.Strings(extras)
		for _, key := range extras {
			seenAnswer[key] = true
			answerKeys = append(answerKeys, key)
		}
	}
	return respondentKeys, answerKeys
}

// Grid renders the export as a rectangular string grid, header first.
// Cell order follows the Columns contract, so two calls over the same
// fields and rows produce identical grids.
func Grid(fields []schema.FieldDescriptor, rows []response.Row) [][]string {
	respondentKeys, answerKeys := Columns(fields, rows)

	header := make([]string, 0, 3+len(respondentKeys)+len(answerKeys))
	header = append(header, "id", "submitted_at", "version_id")
	header = append(header, respondentKeys...)
	header = append(header, answerKeys...)

	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, header)
	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record,
			row.ID.String(),
			row.CreatedAt.UTC().Format(time.RFC3339),
			row.VersionID.String(),
		)
		for _, key := range respondentKeys {
			record = append(record, cellValue(row.Respondent[key], ", "))
		}
		for _, key := range answerKeys {
			record = append(record, cellValue(row.Answers[key], " | "))
		}
		grid = append(grid, record)
	}
	return grid
}

// CSV renders the full export grid as CSV text, header row included.
func CSV(fields []schema.FieldDescriptor, rows []response.Row) string {
	var b strings.Builder
	for _, record := range Grid(fields, rows) {
		writeRecord(&b, record)
	}
	return b.String()
}

func writeRecord(b *strings.Builder, record []string) {
	for i, cell := range record {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(cell))
	}
	b.WriteByte('\n')
}

// cellValue flattens a raw value into one cell. Multi-value answers are
// joined with sep; scalars go through the usual text coercion.
func cellValue(raw any, sep string) string {
	switch t := raw.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, response.Text(item))
		}
		return strings.Join(parts, sep)
	case []string:
		return strings.Join(t, sep)
	case string:
		// Raw strings are exported verbatim, not trimmed.
		return t
	default:
		return response.Text(raw)
	}
}

// escape applies standard CSV quoting: a value containing a comma, quote
// or newline is wrapped in double quotes with inner quotes doubled; all
// other values pass through verbatim.
func escape(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
