package core

import (
	"testing"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a.IsEmpty() || b.IsEmpty() {
		t.Fatal("generated IDs must not be empty")
	}
	if a == b {
		t.Error("consecutive IDs must differ")
	}
}

func TestParseIDsRejectBlank(t *testing.T) {
	if _, err := ParseTenantID("  "); err == nil {
		t.Error("blank tenant ID must be rejected")
	}
	if _, err := ParseQuestionnaireID(""); err == nil {
		t.Error("empty questionnaire ID must be rejected")
	}
	if _, err := ParseVersionID(" "); err == nil {
		t.Error("blank version ID must be rejected")
	}
	if _, err := ParseVersionID("v1"); err != nil {
		t.Errorf("valid version ID rejected: %v", err)
	}
}
