package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"angket/domain/core"
	"angket/domain/response"
	"angket/domain/schema"
	"angket/internal"
	"angket/internal/config"
	"angket/internal/errors"
	"angket/internal/testkit"
	"angket/ports"
)

type fakeSchemaProvider struct {
	version *schema.Version
	err     error
}

func (f *fakeSchemaProvider) GetVersion(_ context.Context, _ core.QuestionnaireID, _ core.VersionID) (*schema.Version, error) {
	return f.version, f.err
}

func (f *fakeSchemaProvider) GetLatestVersion(_ context.Context, _ core.QuestionnaireID) (*schema.Version, error) {
	return f.version, f.err
}

type fakeResponseRepository struct {
	rows       []response.Row
	counts     map[string]int
	lastFilter ports.ResponseFilter
}

func (f *fakeResponseRepository) List(_ context.Context, filter ports.ResponseFilter) ([]response.Row, error) {
	f.lastFilter = filter
	rows := f.rows
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (f *fakeResponseRepository) CountByDay(_ context.Context, filter ports.ResponseFilter) (map[string]int, error) {
	f.lastFilter = filter
	return f.counts, nil
}

func testConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{TrendDefaultDays: 30, AnalyticsRowCap: 100, ExportRowCap: 200}
}

func testService(schemas ports.SchemaProvider, responses ports.ResponseRepository) *AnalyticsService {
	return NewAnalyticsService(schemas, responses, testConfig(), internal.NewLogger(internal.LogLevelError))
}

func fixtureVersion() *schema.Version {
	return &schema.Version{
		ID:              "v1",
		QuestionnaireID: "kuesioner_demo",
		Number:          1,
		Fields:          testkit.SurveyFields(),
		PublishedAt:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAnalyticsService_Summary(t *testing.T) {
	gen := testkit.NewSurveyDataGenerator(testkit.DefaultSurveyConfig())
	repo := &fakeResponseRepository{rows: gen.Generate()}
	svc := testService(&fakeSchemaProvider{version: fixtureVersion()}, repo)

	summary, err := svc.Summary(context.Background(), Query{
		TenantID:        "t1",
		QuestionnaireID: "kuesioner_demo",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalScaleQuestions)
	assert.Greater(t, summary.AvgScaleOverall, 0.0)
	assert.NotEmpty(t, summary.CriteriaSummary)
	// Latest version resolution must scope the row fetch.
	assert.Equal(t, core.VersionID("v1"), repo.lastFilter.VersionID)
	assert.Equal(t, testConfig().AnalyticsRowCap, repo.lastFilter.Limit)
}

func TestAnalyticsService_SummaryPinnedVersion(t *testing.T) {
	repo := &fakeResponseRepository{}
	svc := testService(&fakeSchemaProvider{version: fixtureVersion()}, repo)

	_, err := svc.Summary(context.Background(), Query{
		TenantID:        "t1",
		QuestionnaireID: "kuesioner_demo",
		VersionID:       "v1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.VersionID("v1"), repo.lastFilter.VersionID)
}

func TestAnalyticsService_NotFoundPropagates(t *testing.T) {
	svc := testService(
		&fakeSchemaProvider{err: errors.NotFound("questionnaire version")},
		&fakeResponseRepository{},
	)

	_, err := svc.Summary(context.Background(), Query{QuestionnaireID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAnalyticsService_Trend(t *testing.T) {
	today := time.Now().UTC().Format(core.DayLayout)
	repo := &fakeResponseRepository{counts: map[string]int{today: 3}}
	svc := testService(&fakeSchemaProvider{version: fixtureVersion()}, repo)

	points, err := svc.Trend(context.Background(), Query{QuestionnaireID: "kuesioner_demo"}, 0)
	require.NoError(t, err)
	// Zero days falls back to the configured default window.
	assert.Len(t, points, 30)
	assert.Equal(t, 3, points[len(points)-1].Total)
	// The day-count fetch must not be capped like row fetches are.
	assert.Zero(t, repo.lastFilter.Limit)
}

func TestAnalyticsService_ExportUsesLargerCap(t *testing.T) {
	gen := testkit.NewSurveyDataGenerator(testkit.DefaultSurveyConfig())
	repo := &fakeResponseRepository{rows: gen.Generate()}
	svc := testService(&fakeSchemaProvider{version: fixtureVersion()}, repo)

	csv, err := svc.ExportCSV(context.Background(), Query{QuestionnaireID: "kuesioner_demo"})
	require.NoError(t, err)
	assert.Contains(t, csv, "id,submitted_at,version_id")
	assert.Equal(t, testConfig().ExportRowCap, repo.lastFilter.Limit)
}

func TestAnalyticsService_ExportXLSX(t *testing.T) {
	gen := testkit.NewSurveyDataGenerator(testkit.DefaultSurveyConfig())
	repo := &fakeResponseRepository{rows: gen.Generate()}
	svc := testService(&fakeSchemaProvider{version: fixtureVersion()}, repo)

	workbook, err := svc.ExportXLSX(context.Background(), Query{QuestionnaireID: "kuesioner_demo"})
	require.NoError(t, err)
	assert.NotEmpty(t, workbook)
}
