package ports

import (
	"context"

	"angket/domain/core"
	"angket/domain/schema"
)

// SchemaProvider resolves the published field list for one questionnaire
// version. Access control happens upstream; implementations only fetch.
type SchemaProvider interface {
	// GetVersion returns the published version, or a not-found error when
	// the version does not exist or belongs to another questionnaire.
	GetVersion(ctx context.Context, questionnaireID core.QuestionnaireID, versionID core.VersionID) (*schema.Version, error)

	// GetLatestVersion returns the most recently published version of a
	// questionnaire.
	GetLatestVersion(ctx context.Context, questionnaireID core.QuestionnaireID) (*schema.Version, error)
}
