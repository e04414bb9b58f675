package analysis

import (
	"math"
	"strconv"
	"strings"

	"angket/domain/analytics"
	"angket/domain/response"
	"angket/domain/schema"
)

const maxTextSamples = 5

// PerQuestionDistribution computes one distribution entry per normalized
// field, dispatched on field type. The row set may be empty; every field
// then yields a zeroed entry. A row missing a field is treated the same as
// an empty or invalid answer for that field.
func PerQuestionDistribution(fields []schema.FieldDescriptor, rows []response.Row) []analytics.DistributionEntry {
	entries := make([]analytics.DistributionEntry, 0, len(fields))
	for _, f := range fields {
		entry := analytics.DistributionEntry{
			Name:        f.Name,
			Label:       f.Label,
			DisplayCode: f.DisplayCode,
			Criterion:   f.Criterion,
			Type:        f.Type,
		}
		switch f.Type {
		case schema.TypeScale:
			entry.Scale, entry.TotalAnswered = scaleDistribution(f, rows)
		case schema.TypeSingleChoice, schema.TypeMultiChoice:
			entry.Choice, entry.TotalAnswered = choiceDistribution(f, rows)
		default:
			entry.Text, entry.TotalAnswered = textDistribution(f, rows)
		}
		entries = append(entries, entry)
	}
	return entries
}

// scaleDistribution buckets valid 1..5 answers. Non-numeric and
// out-of-range values do not count as answered at all.
func scaleDistribution(f schema.FieldDescriptor, rows []response.Row) (*analytics.ScaleDistribution, int) {
	counts := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	var sum float64
	total := 0
	for _, row := range rows {
		v, ok := response.ScaleValue(row.Answers[f.Name])
		if !ok || v < 1 || v > 5 {
			continue
		}
		counts[strconv.Itoa(int(math.Round(v)))]++
		sum += v
		total++
	}
	avg := 0.0
	if total > 0 {
		avg = round2(sum / float64(total))
	}
	return &analytics.ScaleDistribution{Average: avg, Counts: counts}, total
}

// choiceDistribution seeds the count map with every declared option and
// grows it for values observed in the data but never declared. A response
// is answered once if it carries at least one non-empty selection;
// TotalSelected counts every individual selection.
func choiceDistribution(f schema.FieldDescriptor, rows []response.Row) (*analytics.ChoiceDistribution, int) {
	counts := make(map[string]int, len(f.Options))
	for _, opt := range f.Options {
		counts[opt] = 0
	}
	answered := 0
	selected := 0
	for _, row := range rows {
		sels := response.Selections(row.Answers[f.Name])
		if len(sels) == 0 {
			continue
		}
		answered++
		selected += len(sels)
		for _, sel := range sels {
			counts[sel]++
		}
	}
	return &analytics.ChoiceDistribution{TotalSelected: selected, Counts: counts}, answered
}

// textDistribution counts trimmed non-empty answers and keeps the first
// few raw values verbatim, first-seen order, no deduplication.
func textDistribution(f schema.FieldDescriptor, rows []response.Row) (*analytics.TextDistribution, int) {
	samples := make([]string, 0, maxTextSamples)
	answered := 0
	for _, row := range rows {
		raw, ok := row.Answers[f.Name].(string)
		if !ok {
			raw = response.Text(row.Answers[f.Name])
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		answered++
		if len(samples) < maxTextSamples {
			samples = append(samples, raw)
		}
	}
	return &analytics.TextDistribution{Samples: samples}, answered
}
