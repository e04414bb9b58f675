package schema

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"angket/domain/core"
)

// FieldType classifies how a question's answers are aggregated.
type FieldType string

const (
	TypeScale        FieldType = "scale"
	TypeSingleChoice FieldType = "single_choice"
	TypeMultiChoice  FieldType = "multi_choice"
	TypeText         FieldType = "text"
)

// IsChoice returns true for both single- and multi-choice fields.
func (t FieldType) IsChoice() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

// FieldDescriptor describes one question in a published schema version.
//
// Criterion is the trimmed grouping label; the empty string means
// "uncategorized" and is only translated into a display bucket at
// aggregation time, never stored as a label of its own.
type FieldDescriptor struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Options     []string  `json:"options,omitempty"`
	Criterion   string    `json:"criterion,omitempty"`
	DisplayCode string    `json:"display_code,omitempty"`
}

// Version is one published questionnaire version with its ordered fields.
type Version struct {
	ID              core.VersionID       `json:"id"`
	QuestionnaireID core.QuestionnaireID `json:"questionnaire_id"`
	Number          int                  `json:"number"`
	Fields          []FieldDescriptor    `json:"fields"`
	PublishedAt     time.Time            `json:"published_at"`
}

var displayCodePattern = regexp.MustCompile(`^[qQ]0*([0-9]+)$`)

// Normalize assigns a stable display code to every field and trims its
// criterion. Fields named "q<n>" (case-insensitive, leading zeros allowed)
// keep their numeric suffix; anything else is coded by 1-based position.
// The result is a fresh slice; the input is not mutated. Recomputing over
// the same ordered field list is idempotent, so every downstream consumer
// must share one normalized list rather than re-deriving its own.
func Normalize(fields []FieldDescriptor) []FieldDescriptor {
	out := make([]FieldDescriptor, len(fields))
	for i, f := range fields {
		f.Criterion = strings.TrimSpace(f.Criterion)
		if m := displayCodePattern.FindStringSubmatch(f.Name); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				f.DisplayCode = "Q" + strconv.Itoa(n)
			} else {
				f.DisplayCode = "Q" + strconv.Itoa(i+1)
			}
		} else {
			f.DisplayCode = "Q" + strconv.Itoa(i+1)
		}
		out[i] = f
	}
	return out
}
