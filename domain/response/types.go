package response

import (
	"strconv"
	"strings"
	"time"

	"angket/domain/core"
)

// Row is one submitted answer set for a single questionnaire version.
//
// Respondent is an open string-keyed profile map (role, class, tenure...).
// Keys are not schema-controlled and may differ between rows. Answers maps
// field names to raw values as they arrived over the wire: float64 for
// scales, string or []any for choices, string for free text.
type Row struct {
	ID              core.ResponseID      `json:"id"`
	QuestionnaireID core.QuestionnaireID `json:"questionnaire_id"`
	VersionID       core.VersionID       `json:"version_id"`
	Respondent      map[string]any       `json:"respondent"`
	Answers         map[string]any       `json:"answers"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ScaleValue coerces a raw answer into a float64. The bool result reports
// whether the value was numeric at all; range validation is left to the
// aggregator.
func ScaleValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Selections flattens a raw choice answer into its individual non-empty
// selections. A scalar yields at most one selection; a list yields one per
// non-empty element.
func Selections(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := Text(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := Text(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// Text coerces a raw answer into a trimmed string. Non-string scalars are
// rendered through their default formatting; nil and empty values yield "".
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
