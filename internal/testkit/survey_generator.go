package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"angket/domain/core"
	"angket/domain/response"
	"angket/domain/schema"
)

// SurveyGeneratorConfig configures the synthetic response generator
type SurveyGeneratorConfig struct {
	ResponseCount int       `json:"response_count"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Seed          int64     `json:"seed"`
}

// DefaultSurveyConfig returns sensible defaults for survey data generation
func DefaultSurveyConfig() SurveyGeneratorConfig {
	return SurveyGeneratorConfig{
		ResponseCount: 120,
		StartDate:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
		Seed:          42,
	}
}

// SurveyDataGenerator generates realistic school-survey responses against
// a fixed field set. The same seed always produces the same rows, so
// fixtures stay stable across test runs.
type SurveyDataGenerator struct {
	config SurveyGeneratorConfig
	rng    *rand.Rand
}

// NewSurveyDataGenerator creates a new survey data generator
func NewSurveyDataGenerator(config SurveyGeneratorConfig) *SurveyDataGenerator {
	return &SurveyDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// SurveyFields returns the raw (un-normalized) field list the generator
// answers against: scale questions grouped under two criteria, one choice
// question of each kind and a free-text question.
func SurveyFields() []schema.FieldDescriptor {
	return []schema.FieldDescriptor{
		{Name: "q1", Label: "Materi pelajaran mudah dipahami", Type: schema.TypeScale, Criterion: "Pembelajaran"},
		{Name: "q2", Label: "Guru menjelaskan dengan jelas", Type: schema.TypeScale, Criterion: "Pembelajaran"},
		{Name: "q3", Label: "Ruang kelas nyaman", Type: schema.TypeScale, Criterion: "Fasilitas"},
		{Name: "q4", Label: "Perpustakaan memadai", Type: schema.TypeScale, Criterion: "Fasilitas"},
		{Name: "q5", Label: "Sumber belajar yang digunakan", Type: schema.TypeMultiChoice,
			Options: []string{"Buku", "Internet", "Diskusi"}},
		{Name: "q6", Label: "Moda belajar favorit", Type: schema.TypeSingleChoice,
			Options: []string{"Daring", "Luring"}},
		{Name: "q7", Label: "Saran dan masukan", Type: schema.TypeText},
	}
}

// Generate produces the configured number of response rows, oldest first.
func (g *SurveyDataGenerator) Generate() []response.Row {
	roles := []string{"Guru", "Siswa", "Orang Tua"}
	classes := []string{"VII-A", "VII-B", "VIII-A", "VIII-B", "IX-A"}
	tenures := []string{"< 1 tahun", "1-5 tahun", "> 5 tahun"}
	comments := []string{
		"Tingkatkan fasilitas laboratorium",
		"Sudah cukup baik",
		"Perbanyak kegiatan praktik",
		"",
	}

	rows := make([]response.Row, 0, g.config.ResponseCount)
	window := g.config.EndDate.Sub(g.config.StartDate)
	for i := 0; i < g.config.ResponseCount; i++ {
		createdAt := g.config.StartDate.Add(time.Duration(g.rng.Int63n(int64(window))))

		answers := map[string]any{
			"q1": float64(g.rng.Intn(5) + 1),
			"q2": float64(g.rng.Intn(5) + 1),
			"q3": float64(g.rng.Intn(5) + 1),
			"q6": []string{"Daring", "Luring"}[g.rng.Intn(2)],
			"q7": comments[g.rng.Intn(len(comments))],
		}
		// q4 is answered by most but not all respondents.
		if g.rng.Float64() < 0.8 {
			answers["q4"] = float64(g.rng.Intn(5) + 1)
		}
		sources := []any{}
		for _, s := range []string{"Buku", "Internet", "Diskusi"} {
			if g.rng.Float64() < 0.5 {
				sources = append(sources, s)
			}
		}
		if len(sources) > 0 {
			answers["q5"] = sources
		}

		role := roles[g.rng.Intn(len(roles))]
		respondent := map[string]any{
			"peran": role,
			"kelas": classes[g.rng.Intn(len(classes))],
		}
		if role == "Guru" {
			respondent["lama_mengajar"] = tenures[g.rng.Intn(len(tenures))]
		}

		rows = append(rows, response.Row{
			ID:              core.ResponseID(fmt.Sprintf("resp_%04d", i+1)),
			QuestionnaireID: "kuesioner_demo",
			VersionID:       "v1",
			Respondent:      respondent,
			Answers:         answers,
			CreatedAt:       createdAt,
		})
	}
	return rows
}
