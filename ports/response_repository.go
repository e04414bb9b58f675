package ports

import (
	"context"
	"time"

	"angket/domain/core"
	"angket/domain/response"
)

// ResponseFilter scopes a row fetch to one tenant, questionnaire and
// version, with an optional date window. From is inclusive, To exclusive.
type ResponseFilter struct {
	TenantID        core.TenantID
	QuestionnaireID core.QuestionnaireID
	VersionID       core.VersionID
	From            *time.Time
	To              *time.Time
	Limit           int
}

// ResponseRepository fetches fully materialized response rows for the
// aggregation engine. Rows are never mixed across schema versions.
type ResponseRepository interface {
	// List returns the rows matching the filter, oldest first, capped at
	// filter.Limit when it is positive.
	List(ctx context.Context, filter ResponseFilter) ([]response.Row, error)

	// CountByDay returns the sparse day->count map for the filter, keyed
	// by UTC calendar day (YYYY-MM-DD).
	CountByDay(ctx context.Context, filter ResponseFilter) (map[string]int, error)
}
