package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"angket/domain/core"
	"angket/domain/schema"
	"angket/internal/errors"
	"angket/ports"
)

// schemaRepository implements the SchemaProvider interface
type schemaRepository struct {
	db *sqlx.DB
}

// NewSchemaRepository creates a new schema repository
func NewSchemaRepository(db *sqlx.DB) ports.SchemaProvider {
	return &schemaRepository{db: db}
}

// GetVersion retrieves one published questionnaire version with its fields
func (r *schemaRepository) GetVersion(ctx context.Context, questionnaireID core.QuestionnaireID, versionID core.VersionID) (*schema.Version, error) {
	query := `SELECT id, questionnaire_id, number, fields, published_at
		FROM questionnaire_versions
		WHERE id = $1 AND questionnaire_id = $2 AND published_at IS NOT NULL`

	return r.scanVersion(r.db.QueryRowxContext(ctx, query, versionID, questionnaireID))
}

// GetLatestVersion retrieves the most recently published version
func (r *schemaRepository) GetLatestVersion(ctx context.Context, questionnaireID core.QuestionnaireID) (*schema.Version, error) {
	query := `SELECT id, questionnaire_id, number, fields, published_at
		FROM questionnaire_versions
		WHERE questionnaire_id = $1 AND published_at IS NOT NULL
		ORDER BY number DESC
		LIMIT 1`

	return r.scanVersion(r.db.QueryRowxContext(ctx, query, questionnaireID))
}

func (r *schemaRepository) scanVersion(row *sqlx.Row) (*schema.Version, error) {
	var v schema.Version
	var fieldsJSON []byte

	err := row.Scan(&v.ID, &v.QuestionnaireID, &v.Number, &fieldsJSON, &v.PublishedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("questionnaire version")
		}
		return nil, errors.DatabaseError(err, "failed to get questionnaire version")
	}

	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &v.Fields); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal version fields")
		}
	}
	return &v, nil
}
