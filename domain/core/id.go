package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	TenantID        ID
	QuestionnaireID ID
	VersionID       ID
	ResponseID      ID
)

// String conversions for domain IDs
func (id TenantID) String() string        { return ID(id).String() }
func (id QuestionnaireID) String() string { return ID(id).String() }
func (id VersionID) String() string       { return ID(id).String() }
func (id ResponseID) String() string      { return ID(id).String() }

// ParseQuestionnaireID parses a string into QuestionnaireID
func ParseQuestionnaireID(s string) (QuestionnaireID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("questionnaire ID cannot be empty")
	}
	return QuestionnaireID(s), nil
}

// ParseVersionID parses a string into VersionID
func ParseVersionID(s string) (VersionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("version ID cannot be empty")
	}
	return VersionID(s), nil
}

// ParseTenantID parses a string into TenantID
func ParseTenantID(s string) (TenantID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("tenant ID cannot be empty")
	}
	return TenantID(s), nil
}
