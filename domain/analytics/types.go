package analytics

import (
	"angket/domain/schema"
)

// Uncategorized is the synthetic criteria bucket for fields without a
// grouping label.
const Uncategorized = "Tanpa Kriteria"

// Score band labels for the derived score-band segment dimension.
const (
	BandLow  = "Rendah"
	BandMid  = "Sedang"
	BandHigh = "Tinggi"
)

// Segment dimension kinds.
const (
	KindCriteria   = "criteria"
	KindDerived    = "derived"
	KindRespondent = "respondent"
)

// Segment dimension metrics.
const (
	MetricAvgScale = "avg_scale"
	MetricCount    = "count"
)

// DistributionEntry is the per-field aggregation result. Exactly one of
// Scale, Choice or Text is set, matching Type.
type DistributionEntry struct {
	Name          string           `json:"name"`
	Label         string           `json:"label"`
	DisplayCode   string           `json:"display_code"`
	Criterion     string           `json:"criterion,omitempty"`
	Type          schema.FieldType `json:"type"`
	TotalAnswered int              `json:"total_answered"`

	Scale  *ScaleDistribution  `json:"scale,omitempty"`
	Choice *ChoiceDistribution `json:"choice,omitempty"`
	Text   *TextDistribution   `json:"text,omitempty"`
}

// ScaleDistribution holds the five integer buckets ("1".."5") and the
// 2-decimal rounded average over valid answers.
type ScaleDistribution struct {
	Average float64        `json:"average"`
	Counts  map[string]int `json:"counts"`
}

// ChoiceDistribution counts individual selections per option label.
// TotalSelected equals TotalAnswered for single choice and may exceed it
// for multi choice. Counts contains every schema-declared option plus any
// value observed in the data but never declared.
type ChoiceDistribution struct {
	TotalSelected int            `json:"total_selected"`
	Counts        map[string]int `json:"counts"`
}

// TextDistribution carries up to five non-empty raw samples, first-seen
// order, no deduplication.
type TextDistribution struct {
	Samples []string `json:"samples"`
}

// CriteriaEntry is the weighted score summary for one criterion group.
type CriteriaEntry struct {
	Criterion           string   `json:"criterion"`
	TotalQuestions      int      `json:"total_questions"`
	TotalScaleQuestions int      `json:"total_scale_questions"`
	TotalScaleAnswered  int      `json:"total_scale_answered"`
	AvgScale            float64  `json:"avg_scale"`
	QuestionCodes       []string `json:"question_codes"`
}

// SegmentBucket is one bucket of a segment dimension.
type SegmentBucket struct {
	Label    string  `json:"label"`
	Total    int     `json:"total"`
	AvgScale float64 `json:"avg_scale,omitempty"`
}

// SegmentDimension is one discoverable axis for cross-tabulation. It is
// recomputed fresh on every aggregation call and never persisted.
type SegmentDimension struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	Label   string          `json:"label"`
	Metric  string          `json:"metric"`
	Buckets []SegmentBucket `json:"buckets"`
}

// TrendPoint is one calendar day of the reconciled daily series.
type TrendPoint struct {
	Day   string `json:"day"`
	Total int    `json:"total"`
}

// QuestionAverage is the per-scale-question average used by the summary.
type QuestionAverage struct {
	DisplayCode   string  `json:"display_code"`
	Label         string  `json:"label"`
	Criterion     string  `json:"criterion,omitempty"`
	Average       float64 `json:"average"`
	TotalAnswered int     `json:"total_answered"`
}

// Summary is the headline aggregation over one questionnaire version.
type Summary struct {
	AvgScaleOverall             float64            `json:"avg_scale_overall"`
	TotalScaleQuestions         int                `json:"total_scale_questions"`
	TotalChoiceAnswers          int                `json:"total_choice_answers"`
	TotalTextAnswers            int                `json:"total_text_answers"`
	TotalQuestionsWithCriterion int                `json:"total_questions_with_criterion"`
	QuestionAverages            []QuestionAverage  `json:"question_averages"`
	ScaleAverages               map[string]float64 `json:"scale_averages"`
	CriteriaSummary             []CriteriaEntry    `json:"criteria_summary"`
	SegmentSummary              []SegmentDimension `json:"segment_summary"`
}

// Distribution is the full per-question breakdown plus the derived
// criteria and segment views.
type Distribution struct {
	ByQuestion      []DistributionEntry `json:"by_question"`
	CriteriaSummary []CriteriaEntry     `json:"criteria_summary"`
	SegmentSummary  []SegmentDimension  `json:"segment_summary"`
}
