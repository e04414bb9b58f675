package analysis

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/stat"

	"angket/domain/analytics"
)

// criteriaCollator orders criterion labels the way they are displayed.
// Labels are Indonesian free text; collation keeps mixed-case and accented
// labels in a stable, human-expected order.
var criteriaCollator = collate.New(language.Indonesian)

// CriteriaSummary groups distribution entries by criterion and computes a
// response-weighted average score per group. The weighting matters: a
// field answered by 100 respondents must dominate a field answered by 5,
// so the group score is sum(avg_i * n_i) / sum(n_i), not a plain mean of
// per-field averages. Fields without a criterion fall into the
// "Tanpa Kriteria" bucket, which sorts like any other label.
func CriteriaSummary(entries []analytics.DistributionEntry) []analytics.CriteriaEntry {
	type group struct {
		entry   analytics.CriteriaEntry
		avgs    []float64
		weights []float64
		seen    map[string]bool
	}

	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, e := range entries {
		label := e.Criterion
		if label == "" {
			label = analytics.Uncategorized
		}
		g, ok := groups[label]
		if !ok {
			g = &group{
				entry: analytics.CriteriaEntry{Criterion: label, QuestionCodes: []string{}},
				seen:  make(map[string]bool),
			}
			groups[label] = g
			order = append(order, label)
		}
		g.entry.TotalQuestions++
		if !g.seen[e.DisplayCode] {
			g.seen[e.DisplayCode] = true
			g.entry.QuestionCodes = append(g.entry.QuestionCodes, e.DisplayCode)
		}
		if e.Scale != nil {
			g.entry.TotalScaleQuestions++
			g.entry.TotalScaleAnswered += e.TotalAnswered
			if e.TotalAnswered > 0 {
				g.avgs = append(g.avgs, e.Scale.Average)
				g.weights = append(g.weights, float64(e.TotalAnswered))
			}
		}
	}

	out := make([]analytics.CriteriaEntry, 0, len(groups))
	for _, label := range order {
		g := groups[label]
		if g.entry.TotalScaleAnswered > 0 {
			g.entry.AvgScale = round2(stat.Mean(g.avgs, g.weights))
		}
		out = append(out, g.entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return criteriaCollator.CompareString(out[i].Criterion, out[j].Criterion) < 0
	})
	return out
}
