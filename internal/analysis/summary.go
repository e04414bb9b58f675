package analysis

import (
	"gonum.org/v1/gonum/stat"

	"angket/domain/analytics"
	"angket/domain/response"
	"angket/domain/schema"
)

// ComputeDistribution runs the full per-question breakdown for one
// questionnaire version plus the criteria and segment views derived from
// it. Pure: identical inputs always produce identical output.
func ComputeDistribution(fields []schema.FieldDescriptor, rows []response.Row) analytics.Distribution {
	nf := schema.Normalize(fields)
	entries := PerQuestionDistribution(nf, rows)
	criteria := CriteriaSummary(entries)
	return analytics.Distribution{
		ByQuestion:      entries,
		CriteriaSummary: criteria,
		SegmentSummary:  SegmentDimensions(nf, rows, criteria),
	}
}

// ComputeSummary condenses the same aggregation into the headline numbers
// the dashboard renders: the answer-weighted overall scale average,
// per-question averages, and the criteria and segment views.
func ComputeSummary(fields []schema.FieldDescriptor, rows []response.Row) analytics.Summary {
	nf := schema.Normalize(fields)
	entries := PerQuestionDistribution(nf, rows)
	criteria := CriteriaSummary(entries)

	s := analytics.Summary{
		QuestionAverages: []analytics.QuestionAverage{},
		ScaleAverages:    map[string]float64{},
		CriteriaSummary:  criteria,
		SegmentSummary:   SegmentDimensions(nf, rows, criteria),
	}

	var avgs, weights []float64
	for _, e := range entries {
		if e.Criterion != "" {
			s.TotalQuestionsWithCriterion++
		}
		switch {
		case e.Scale != nil:
			s.TotalScaleQuestions++
			s.QuestionAverages = append(s.QuestionAverages, analytics.QuestionAverage{
				DisplayCode:   e.DisplayCode,
				Label:         e.Label,
				Criterion:     e.Criterion,
				Average:       e.Scale.Average,
				TotalAnswered: e.TotalAnswered,
			})
			s.ScaleAverages[e.DisplayCode] = e.Scale.Average
			if e.TotalAnswered > 0 {
				avgs = append(avgs, e.Scale.Average)
				weights = append(weights, float64(e.TotalAnswered))
			}
		case e.Choice != nil:
			s.TotalChoiceAnswers += e.TotalAnswered
		case e.Text != nil:
			s.TotalTextAnswers += e.TotalAnswered
		}
	}
	if len(avgs) > 0 {
		s.AvgScaleOverall = round2(stat.Mean(avgs, weights))
	}
	return s
}
