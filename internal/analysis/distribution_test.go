package analysis

import (
	"testing"

	"angket/domain/response"
	"angket/domain/schema"
)

func scaleRows(name string, values ...any) []response.Row {
	rows := make([]response.Row, 0, len(values))
	for _, v := range values {
		answers := map[string]any{}
		if v != nil {
			answers[name] = v
		}
		rows = append(rows, response.Row{Answers: answers})
	}
	return rows
}

func TestPerQuestionDistribution_Scale(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q1", Label: "Materi mudah dipahami", Type: schema.TypeScale},
	})
	rows := scaleRows("q1", 5.0, 5.0, 4.0, 3.0, "bad", nil, 2.0)

	entries := PerQuestionDistribution(fields, rows)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Scale == nil {
		t.Fatal("expected scale distribution")
	}
	if e.TotalAnswered != 5 {
		t.Errorf("expected 5 answered, got %d", e.TotalAnswered)
	}
	if e.Scale.Average != 3.8 {
		t.Errorf("expected average 3.8, got %v", e.Scale.Average)
	}
	expected := map[string]int{"1": 0, "2": 1, "3": 1, "4": 1, "5": 2}
	for bucket, want := range expected {
		if got := e.Scale.Counts[bucket]; got != want {
			t.Errorf("bucket %s: expected %d, got %d", bucket, want, got)
		}
	}

	// Bucket totals always add up to the answered count.
	sum := 0
	for _, n := range e.Scale.Counts {
		sum += n
	}
	if sum != e.TotalAnswered {
		t.Errorf("bucket sum %d != total answered %d", sum, e.TotalAnswered)
	}
}

func TestPerQuestionDistribution_ScaleRejectsOutOfRange(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q1", Type: schema.TypeScale},
	})
	rows := scaleRows("q1", 0.0, 6.0, -1.0, "7", 3.0)

	e := PerQuestionDistribution(fields, rows)[0]
	if e.TotalAnswered != 1 {
		t.Errorf("expected only the in-range answer to count, got %d", e.TotalAnswered)
	}
	if e.Scale.Average != 3.0 {
		t.Errorf("expected average 3, got %v", e.Scale.Average)
	}
}

func TestPerQuestionDistribution_ScaleNumericStrings(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q1", Type: schema.TypeScale},
	})
	rows := scaleRows("q1", "4", " 5 ", "2.5")

	e := PerQuestionDistribution(fields, rows)[0]
	if e.TotalAnswered != 3 {
		t.Errorf("expected numeric strings to parse, got %d answered", e.TotalAnswered)
	}
}

func TestPerQuestionDistribution_MultiChoice(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q5", Type: schema.TypeMultiChoice, Options: []string{"Buku", "Internet", "Diskusi"}},
	})
	rows := []response.Row{
		{Answers: map[string]any{"q5": []any{"Buku", "Internet"}}},
		{Answers: map[string]any{"q5": []any{"Buku"}}},
		{Answers: map[string]any{"q5": []any{}}},
		{Answers: map[string]any{"q5": []any{"Podcast"}}}, // not declared in schema
		{Answers: map[string]any{}},
	}

	e := PerQuestionDistribution(fields, rows)[0]
	if e.Choice == nil {
		t.Fatal("expected choice distribution")
	}
	// Answered counts responses, selected counts individual picks.
	if e.TotalAnswered != 3 {
		t.Errorf("expected 3 answered, got %d", e.TotalAnswered)
	}
	if e.Choice.TotalSelected != 4 {
		t.Errorf("expected 4 selections, got %d", e.Choice.TotalSelected)
	}
	if e.Choice.Counts["Buku"] != 2 || e.Choice.Counts["Internet"] != 1 {
		t.Errorf("unexpected counts: %v", e.Choice.Counts)
	}
	if e.Choice.Counts["Diskusi"] != 0 {
		t.Errorf("declared option must be seeded at zero, got %d", e.Choice.Counts["Diskusi"])
	}
	if e.Choice.Counts["Podcast"] != 1 {
		t.Errorf("undeclared observed value must be counted, got %d", e.Choice.Counts["Podcast"])
	}
}

func TestPerQuestionDistribution_SingleChoice(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q6", Type: schema.TypeSingleChoice, Options: []string{"Daring", "Luring"}},
	})
	rows := []response.Row{
		{Answers: map[string]any{"q6": "Daring"}},
		{Answers: map[string]any{"q6": "Daring"}},
		{Answers: map[string]any{"q6": "Luring"}},
		{Answers: map[string]any{"q6": ""}},
	}

	e := PerQuestionDistribution(fields, rows)[0]
	if e.TotalAnswered != 3 {
		t.Errorf("expected 3 answered, got %d", e.TotalAnswered)
	}
	if e.Choice.TotalSelected != e.TotalAnswered {
		t.Errorf("single choice selected %d must equal answered %d", e.Choice.TotalSelected, e.TotalAnswered)
	}
}

func TestPerQuestionDistribution_Text(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q7", Type: schema.TypeText},
	})
	rows := []response.Row{
		{Answers: map[string]any{"q7": "satu"}},
		{Answers: map[string]any{"q7": "   "}},
		{Answers: map[string]any{"q7": "dua"}},
		{Answers: map[string]any{"q7": "tiga"}},
		{Answers: map[string]any{"q7": "empat"}},
		{Answers: map[string]any{"q7": "lima"}},
		{Answers: map[string]any{"q7": "enam"}},
	}

	e := PerQuestionDistribution(fields, rows)[0]
	if e.TotalAnswered != 6 {
		t.Errorf("expected 6 answered, got %d", e.TotalAnswered)
	}
	if len(e.Text.Samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(e.Text.Samples))
	}
	if e.Text.Samples[0] != "satu" || e.Text.Samples[4] != "lima" {
		t.Errorf("samples must keep first-seen order: %v", e.Text.Samples)
	}
}

func TestPerQuestionDistribution_EmptyRows(t *testing.T) {
	fields := schema.Normalize([]schema.FieldDescriptor{
		{Name: "q1", Type: schema.TypeScale},
		{Name: "q6", Type: schema.TypeSingleChoice, Options: []string{"A"}},
		{Name: "q7", Type: schema.TypeText},
	})

	entries := PerQuestionDistribution(fields, nil)
	for _, e := range entries {
		if e.TotalAnswered != 0 {
			t.Errorf("%s: expected 0 answered on empty rows, got %d", e.Name, e.TotalAnswered)
		}
	}
	if entries[0].Scale.Average != 0 {
		t.Errorf("expected zero average, got %v", entries[0].Scale.Average)
	}
	if entries[1].Choice.Counts["A"] != 0 {
		t.Errorf("expected seeded option at zero, got %v", entries[1].Choice.Counts)
	}
	if len(entries[2].Text.Samples) != 0 {
		t.Errorf("expected no samples, got %v", entries[2].Text.Samples)
	}
}
