package postgres

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jmoiron/sqlx"

	"angket/domain/response"
	"angket/internal/errors"
	"angket/ports"
)

// responseRepository implements the ResponseRepository interface
type responseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *sqlx.DB) ports.ResponseRepository {
	return &responseRepository{db: db}
}

// List returns materialized response rows matching the filter, oldest first
func (r *responseRepository) List(ctx context.Context, filter ports.ResponseFilter) ([]response.Row, error) {
	query := `SELECT id, questionnaire_id, version_id, respondent, answers, created_at
		FROM responses
		WHERE tenant_id = $1 AND questionnaire_id = $2 AND version_id = $3`
	args := []interface{}{filter.TenantID, filter.QuestionnaireID, filter.VersionID}

	query, args = appendDateWindow(query, args, filter)
	query += ` ORDER BY created_at ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError(err, "failed to query responses")
	}
	defer rows.Close()

	var out []response.Row
	for rows.Next() {
		var row response.Row
		var respondentJSON, answersJSON []byte

		err := rows.Scan(&row.ID, &row.QuestionnaireID, &row.VersionID, &respondentJSON, &answersJSON, &row.CreatedAt)
		if err != nil {
			return nil, errors.DatabaseError(err, "failed to scan response row")
		}
		if len(respondentJSON) > 0 {
			if err := json.Unmarshal(respondentJSON, &row.Respondent); err != nil {
				return nil, errors.Wrap(err, "failed to unmarshal respondent profile")
			}
		}
		if len(answersJSON) > 0 {
			if err := json.Unmarshal(answersJSON, &row.Answers); err != nil {
				return nil, errors.Wrap(err, "failed to unmarshal answers")
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError(err, "failed to iterate responses")
	}
	return out, nil
}

// CountByDay returns the sparse day->count map for the filter, keyed by
// UTC calendar day
func (r *responseRepository) CountByDay(ctx context.Context, filter ports.ResponseFilter) (map[string]int, error) {
	query := `SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS total
		FROM responses
		WHERE tenant_id = $1 AND questionnaire_id = $2 AND version_id = $3`
	args := []interface{}{filter.TenantID, filter.QuestionnaireID, filter.VersionID}

	query, args = appendDateWindow(query, args, filter)
	query += ` GROUP BY day`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError(err, "failed to count responses by day")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, errors.DatabaseError(err, "failed to scan day count")
		}
		counts[day] = total
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError(err, "failed to iterate day counts")
	}
	return counts, nil
}

// appendDateWindow adds the optional created_at window to a query.
// From is inclusive, To exclusive.
func appendDateWindow(query string, args []interface{}, filter ports.ResponseFilter) (string, []interface{}) {
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND created_at < $` + strconv.Itoa(len(args))
	}
	return query, args
}
