package testkit

import (
	"reflect"
	"testing"
)

func TestSurveyDataGenerator_Deterministic(t *testing.T) {
	cfg := DefaultSurveyConfig()
	first := NewSurveyDataGenerator(cfg).Generate()
	second := NewSurveyDataGenerator(cfg).Generate()

	if len(first) != cfg.ResponseCount {
		t.Fatalf("expected %d rows, got %d", cfg.ResponseCount, len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed must generate identical fixtures")
	}
}

func TestSurveyDataGenerator_RowsInsideWindow(t *testing.T) {
	cfg := DefaultSurveyConfig()
	rows := NewSurveyDataGenerator(cfg).Generate()

	for _, row := range rows {
		if row.CreatedAt.Before(cfg.StartDate) || row.CreatedAt.After(cfg.EndDate) {
			t.Errorf("row %s outside the configured window: %s", row.ID, row.CreatedAt)
		}
		if len(row.Answers) == 0 {
			t.Errorf("row %s has no answers", row.ID)
		}
	}
}

func TestSurveyFields_Normalizable(t *testing.T) {
	fields := SurveyFields()
	if len(fields) != 7 {
		t.Fatalf("expected 7 fields, got %d", len(fields))
	}
	names := map[string]bool{}
	for _, f := range fields {
		if names[f.Name] {
			t.Errorf("duplicate field name %s", f.Name)
		}
		names[f.Name] = true
	}
}
