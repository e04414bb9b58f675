package errors

import (
	"fmt"
	"testing"
)

func TestDatabaseError(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := DatabaseError(cause, "failed to query responses")

	if GetCode(err) != CodeDatabaseError {
		t.Errorf("expected %s, got %s", CodeDatabaseError, GetCode(err))
	}
	if err.Error() != "failed to query responses: connection reset" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if DatabaseError(nil, "ignored") != nil {
		t.Error("nil cause must yield nil")
	}
}

func TestWrapfKeepsCode(t *testing.T) {
	err := Wrapf(NotFound("questionnaire version"), "fetching version %s", "v1")

	if GetCode(err) != CodeNotFound {
		t.Errorf("wrapping must keep the inner code, got %s", GetCode(err))
	}
	if !IsNotFound(err) {
		t.Error("wrapped not-found error must still report as not found")
	}
}

func TestWrapTagsUnknownCausesInternal(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "context")
	if GetCode(err) != CodeInternalError {
		t.Errorf("expected %s, got %s", CodeInternalError, GetCode(err))
	}
}
