package analysis

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"angket/domain/analytics"
	"angket/domain/response"
	"angket/domain/schema"
)

const (
	// Respondent attributes survive discovery only inside this cardinality
	// window. One distinct value segments nothing; beyond twelve the
	// attribute behaves like free text and the breakdown is unreadable.
	minDistinctValues = 2
	maxDistinctValues = 12
	minAnsweredValues = 2

	maxAttributeValueLen = 80
)

var titleCaser = cases.Title(language.Indonesian)

// SegmentDimensions derives every discoverable segmentation axis from the
// current row set: the criteria axis, the derived score-band axis and one
// axis per respondent attribute that passes the inclusion thresholds.
func SegmentDimensions(fields []schema.FieldDescriptor, rows []response.Row, criteria []analytics.CriteriaEntry) []analytics.SegmentDimension {
	dims := make([]analytics.SegmentDimension, 0, 2)

	if d, ok := criteriaDimension(criteria); ok {
		dims = append(dims, d)
	}
	if d, ok := scoreBandDimension(fields, rows); ok {
		dims = append(dims, d)
	}
	dims = append(dims, respondentDimensions(rows)...)

	return dims
}

func criteriaDimension(criteria []analytics.CriteriaEntry) (analytics.SegmentDimension, bool) {
	if len(criteria) == 0 {
		return analytics.SegmentDimension{}, false
	}
	buckets := make([]analytics.SegmentBucket, 0, len(criteria))
	for _, c := range criteria {
		buckets = append(buckets, analytics.SegmentBucket{
			Label:    c.Criterion,
			Total:    c.TotalScaleAnswered,
			AvgScale: c.AvgScale,
		})
	}
	return analytics.SegmentDimension{
		ID:      "criteria",
		Kind:    analytics.KindCriteria,
		Label:   "Kriteria",
		Metric:  analytics.MetricAvgScale,
		Buckets: buckets,
	}, true
}

// scoreBandDimension buckets each response by the mean of its valid scale
// answers across all scale fields. Responses with no valid scale answer
// are skipped entirely. The 2.5 boundary classifies low.
func scoreBandDimension(fields []schema.FieldDescriptor, rows []response.Row) (analytics.SegmentDimension, bool) {
	scaleFields := make([]schema.FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		if f.Type == schema.TypeScale {
			scaleFields = append(scaleFields, f)
		}
	}

	totals := map[string]int{analytics.BandLow: 0, analytics.BandMid: 0, analytics.BandHigh: 0}
	answered := 0
	for _, row := range rows {
		var values []float64
		for _, f := range scaleFields {
			v, ok := response.ScaleValue(row.Answers[f.Name])
			if !ok || v < 1 || v > 5 {
				continue
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			continue
		}
		avg, err := stats.Mean(values)
		if err != nil {
			continue
		}
		totals[scoreBand(avg)]++
		answered++
	}
	if answered == 0 {
		return analytics.SegmentDimension{}, false
	}

	return analytics.SegmentDimension{
		ID:     "score_band",
		Kind:   analytics.KindDerived,
		Label:  "Kelompok Skor",
		Metric: analytics.MetricCount,
		Buckets: []analytics.SegmentBucket{
			{Label: analytics.BandLow, Total: totals[analytics.BandLow]},
			{Label: analytics.BandMid, Total: totals[analytics.BandMid]},
			{Label: analytics.BandHigh, Total: totals[analytics.BandHigh]},
		},
	}, true
}

func scoreBand(avg float64) string {
	switch {
	case avg <= 2.5:
		return analytics.BandLow
	case avg < 4:
		return analytics.BandMid
	default:
		return analytics.BandHigh
	}
}

// respondentDimensions builds one value histogram per attribute key
// observed anywhere in the row set, then keeps only the keys whose
// cardinality and answer count clear the inclusion thresholds.
func respondentDimensions(rows []response.Row) []analytics.SegmentDimension {
	hist := make(map[string]map[string]int)
	for _, row := range rows {
		for key, raw := range row.Respondent {
			value := attributeValue(raw)
			if value == "" {
				continue
			}
			if hist[key] == nil {
				hist[key] = make(map[string]int)
			}
			hist[key][value]++
		}
	}

	dims := make([]analytics.SegmentDimension, 0, len(hist))
	for key, values := range hist {
		if len(values) < minDistinctValues || len(values) > maxDistinctValues {
			continue
		}
		answered := 0
		for _, n := range values {
			answered += n
		}
		if answered < minAnsweredValues {
			continue
		}

		buckets := make([]analytics.SegmentBucket, 0, len(values))
		for value, n := range values {
			buckets = append(buckets, analytics.SegmentBucket{Label: value, Total: n})
		}
		sort.Slice(buckets, func(i, j int) bool {
			if buckets[i].Total != buckets[j].Total {
				return buckets[i].Total > buckets[j].Total
			}
			return buckets[i].Label < buckets[j].Label
		})

		dims = append(dims, analytics.SegmentDimension{
			ID:      "respondent:" + key,
			Kind:    analytics.KindRespondent,
			Label:   humanizeKey(key),
			Metric:  analytics.MetricCount,
			Buckets: buckets,
		})
	}

	sort.Slice(dims, func(i, j int) bool {
		ti, tj := dims[i].Buckets[0].Total, dims[j].Buckets[0].Total
		if ti != tj {
			return ti > tj
		}
		return dims[i].Label < dims[j].Label
	})
	return dims
}

// attributeValue normalizes a raw respondent attribute into a bucket
// label. Arrays are joined with ", "; anything longer than the cap is cut
// with an ellipsis so one pathological value cannot blow up the histogram.
func attributeValue(raw any) string {
	var value string
	switch t := raw.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := response.Text(item); s != "" {
				parts = append(parts, s)
			}
		}
		value = strings.Join(parts, ", ")
	case []string:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(item); s != "" {
				parts = append(parts, s)
			}
		}
		value = strings.Join(parts, ", ")
	default:
		value = response.Text(raw)
	}
	value = strings.TrimSpace(value)
	if r := []rune(value); len(r) > maxAttributeValueLen {
		value = string(r[:maxAttributeValueLen]) + "…"
	}
	return value
}

// humanizeKey converts a snake_case attribute key into a display title,
// e.g. "lama_mengajar" -> "Lama Mengajar".
func humanizeKey(key string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(key)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return key
	}
	return titleCaser.String(s)
}
