package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"angket/adapters/excel"
	"angket/domain/analytics"
	"angket/domain/core"
	"angket/domain/response"
	"angket/domain/schema"
	"angket/internal"
	"angket/internal/analysis"
	"angket/internal/config"
	"angket/internal/export"
	"angket/ports"
)

// Query scopes one analytics request. An empty VersionID means the latest
// published version of the questionnaire.
type Query struct {
	TenantID        core.TenantID
	QuestionnaireID core.QuestionnaireID
	VersionID       core.VersionID
	From            *time.Time
	To              *time.Time
}

// AnalyticsService glues the storage ports to the pure aggregation engine.
// The service owns row-set bounding (analytics vs export caps); the engine
// itself never limits its input.
type AnalyticsService struct {
	schemas   ports.SchemaProvider
	responses ports.ResponseRepository
	xlsx      *excel.Writer
	cfg       config.AnalyticsConfig
	log       *internal.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(schemas ports.SchemaProvider, responses ports.ResponseRepository, cfg config.AnalyticsConfig, log *internal.Logger) *AnalyticsService {
	return &AnalyticsService{
		schemas:   schemas,
		responses: responses,
		xlsx:      excel.NewWriter(),
		cfg:       cfg,
		log:       log,
	}
}

// Summary computes the headline aggregation for one questionnaire version.
func (s *AnalyticsService) Summary(ctx context.Context, q Query) (analytics.Summary, error) {
	fields, rows, err := s.fetch(ctx, q, s.cfg.AnalyticsRowCap)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analysis.ComputeSummary(fields, rows), nil
}

// Distribution computes the full per-question breakdown.
func (s *AnalyticsService) Distribution(ctx context.Context, q Query) (analytics.Distribution, error) {
	fields, rows, err := s.fetch(ctx, q, s.cfg.AnalyticsRowCap)
	if err != nil {
		return analytics.Distribution{}, err
	}
	return analysis.ComputeDistribution(fields, rows), nil
}

// Trend reconciles daily response counts into a dense series. A zero day
// count falls back to the configured default before the engine clamps it.
func (s *AnalyticsService) Trend(ctx context.Context, q Query, days int) ([]analytics.TrendPoint, error) {
	version, err := s.resolveVersion(ctx, q)
	if err != nil {
		return nil, err
	}
	sparse, err := s.responses.CountByDay(ctx, s.filter(q, version.ID, 0))
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = s.cfg.TrendDefaultDays
	}
	return analysis.Trend(sparse, days, q.From, q.To), nil
}

// ExportCSV renders the flattened response grid as CSV text.
func (s *AnalyticsService) ExportCSV(ctx context.Context, q Query) (string, error) {
	fields, rows, err := s.fetch(ctx, q, s.cfg.ExportRowCap)
	if err != nil {
		return "", err
	}
	s.log.Info("exporting %d responses as CSV", len(rows))
	return export.CSV(schema.Normalize(fields), rows), nil
}

// ExportXLSX renders the same grid as an XLSX workbook.
func (s *AnalyticsService) ExportXLSX(ctx context.Context, q Query) ([]byte, error) {
	fields, rows, err := s.fetch(ctx, q, s.cfg.ExportRowCap)
	if err != nil {
		return nil, err
	}
	s.log.Info("exporting %d responses as XLSX", len(rows))
	return s.xlsx.Write(schema.Normalize(fields), rows)
}

// fetch resolves the version and loads fields and rows. When the caller
// pinned a version the two reads run concurrently; otherwise the latest
// version is resolved first so the row fetch can be scoped to it.
func (s *AnalyticsService) fetch(ctx context.Context, q Query, rowCap int) ([]schema.FieldDescriptor, []response.Row, error) {
	if q.VersionID == "" {
		version, err := s.resolveVersion(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows, err := s.responses.List(ctx, s.filter(q, version.ID, rowCap))
		if err != nil {
			return nil, nil, err
		}
		return version.Fields, rows, nil
	}

	var (
		version *schema.Version
		rows    []response.Row
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.schemas.GetVersion(gctx, q.QuestionnaireID, q.VersionID)
		if err != nil {
			return err
		}
		version = v
		return nil
	})
	g.Go(func() error {
		r, err := s.responses.List(gctx, s.filter(q, q.VersionID, rowCap))
		if err != nil {
			return err
		}
		rows = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return version.Fields, rows, nil
}

func (s *AnalyticsService) resolveVersion(ctx context.Context, q Query) (*schema.Version, error) {
	if q.VersionID != "" {
		return s.schemas.GetVersion(ctx, q.QuestionnaireID, q.VersionID)
	}
	return s.schemas.GetLatestVersion(ctx, q.QuestionnaireID)
}

func (s *AnalyticsService) filter(q Query, versionID core.VersionID, limit int) ports.ResponseFilter {
	return ports.ResponseFilter{
		TenantID:        q.TenantID,
		QuestionnaireID: q.QuestionnaireID,
		VersionID:       versionID,
		From:            q.From,
		To:              q.To,
		Limit:           limit,
	}
}
