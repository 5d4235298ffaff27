package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodePlanNotFound, "test error message")

	if err.Code != ErrCodePlanNotFound {
		t.Errorf("expected code %s, got %s", ErrCodePlanNotFound, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlanforgeError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodePlanInvalid, "invalid plan"),
			wantCode: "PLAN-002",
			wantMsg:  "invalid plan",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-001",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodePlanNotFound, "plan not found").
		WithSuggestion("Run the wizard again")

	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}

	if err.Suggestions[0] != "Run the wizard again" {
		t.Errorf("unexpected suggestion: %s", err.Suggestions[0])
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should contain suggestions section")
	}

	if !strings.Contains(errStr, "Run the wizard again") {
		t.Errorf("error string should contain suggestion text")
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeWizardFieldRequired, "fields missing").
		WithSuggestions("Suggestion 1", "Suggestion 2", "Suggestion 3")

	if len(err.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	errStr := err.Error()
	for _, suggestion := range err.Suggestions {
		if !strings.Contains(errStr, suggestion) {
			t.Errorf("error string should contain suggestion: %s", suggestion)
		}
	}
}

func TestWithDocs(t *testing.T) {
	docsURL := "https://github.com/felixgeelhaar/planforge#docs"
	err := New(ErrCodePlanInvalid, "invalid plan").
		WithDocs(docsURL)

	if err.DocsURL != docsURL {
		t.Errorf("expected docs URL %s, got %s", docsURL, err.DocsURL)
	}

	errStr := err.Error()
	if !strings.Contains(errStr, docsURL) {
		t.Errorf("error string should contain docs URL")
	}
}

func TestNewRelayAPIError(t *testing.T) {
	err := NewRelayAPIError(429, `{"error":{"type":"rate_limit_error"}}`)

	if err.Code != ErrCodeRelayAPI {
		t.Errorf("expected code %s, got %s", ErrCodeRelayAPI, err.Code)
	}

	if !strings.Contains(err.Message, "429") {
		t.Errorf("message should carry the upstream status, got: %s", err.Message)
	}

	// The raw body rides on the cause for server-side logging
	if err.Cause == nil || !strings.Contains(err.Cause.Error(), "rate_limit_error") {
		t.Errorf("cause should carry the provider response body, got: %v", err.Cause)
	}
}

func TestNewCredentialMissingError(t *testing.T) {
	err := NewCredentialMissingError()

	if err.Code != ErrCodeCredentialMissing {
		t.Errorf("expected code %s, got %s", ErrCodeCredentialMissing, err.Code)
	}

	if len(err.Suggestions) == 0 {
		t.Error("credential error should suggest how to configure the key")
	}
}

func TestNewWizardFieldRequiredError(t *testing.T) {
	err := NewWizardFieldRequiredError([]string{"businessName", "industry"})

	if !strings.Contains(err.Message, "businessName") || !strings.Contains(err.Message, "industry") {
		t.Errorf("message should list the missing fields, got: %s", err.Message)
	}
}
