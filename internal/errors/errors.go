package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeCredentialMissing ErrorCode = "CONFIG-001"

	// Relay errors (RELAY-001 to RELAY-099)
	ErrCodeRelayAPI     ErrorCode = "RELAY-001"
	ErrCodeRelayRequest ErrorCode = "RELAY-002"

	// Plan errors (PLAN-001 to PLAN-099)
	ErrCodePlanNotFound ErrorCode = "PLAN-001"
	ErrCodePlanInvalid  ErrorCode = "PLAN-002"
	ErrCodePlanParse    ErrorCode = "PLAN-003"

	// Wizard errors (WIZARD-001 to WIZARD-099)
	ErrCodeWizardFieldRequired ErrorCode = "WIZARD-001"
	ErrCodeWizardCompleted     ErrorCode = "WIZARD-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeFileUnmarshal   ErrorCode = "IO-003"
	ErrCodeFileMarshal     ErrorCode = "IO-004"
)

// PlanforgeError represents an enhanced error with code, suggestions, and documentation
type PlanforgeError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *PlanforgeError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlanforgeError) Unwrap() error {
	return e.Cause
}

// New creates a new PlanforgeError
func New(code ErrorCode, message string) *PlanforgeError {
	return &PlanforgeError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlanforgeError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlanforgeError {
	return &PlanforgeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlanforgeError) WithSuggestion(suggestion string) *PlanforgeError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlanforgeError) WithSuggestions(suggestions ...string) *PlanforgeError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *PlanforgeError) WithDocs(url string) *PlanforgeError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewCredentialMissingError creates a missing API credential error
func NewCredentialMissingError() *PlanforgeError {
	return New(ErrCodeCredentialMissing, "Anthropic API key is not configured").
		WithSuggestion("Set the ANTHROPIC_API_KEY environment variable").
		WithSuggestion("Or add 'api_key' to the relay section of your config file").
		WithDocs("https://github.com/felixgeelhaar/planforge#configuration")
}

// NewRelayAPIError creates a provider API error carrying the upstream status.
// The raw body is kept for server-side logging only and never shown to end users.
func NewRelayAPIError(status int, body string) *PlanforgeError {
	return New(ErrCodeRelayAPI, fmt.Sprintf("completion request failed with status %d", status)).
		WithSuggestion("Check your API key and account quota").
		WithSuggestion("Retry later if the provider is degraded").
		WithDocs("https://docs.anthropic.com/en/api/errors").
		withDetail(body)
}

func (e *PlanforgeError) withDetail(detail string) *PlanforgeError {
	if detail != "" {
		e.Cause = fmt.Errorf("provider response: %s", detail)
	}
	return e
}

// NewPlanNotFoundError creates a plan lookup error
func NewPlanNotFoundError(id string) *PlanforgeError {
	return New(ErrCodePlanNotFound, fmt.Sprintf("plan not found: %s", id)).
		WithSuggestion("Generated plans are not persisted between requests").
		WithSuggestion("Run the wizard again to generate a new plan")
}

// NewPlanParseError creates a plan parse error
func NewPlanParseError(cause error) *PlanforgeError {
	return Wrap(ErrCodePlanParse, "AI response did not match the expected plan structure", cause).
		WithSuggestion("The static fallback plan is used when this happens")
}

// NewWizardFieldRequiredError creates a required field error
func NewWizardFieldRequiredError(fields []string) *PlanforgeError {
	return New(ErrCodeWizardFieldRequired, fmt.Sprintf("required fields are missing: %s", strings.Join(fields, ", "))).
		WithSuggestion("Fill in the highlighted fields before continuing")
}

// NewWizardCompletedError creates an error for mutations after plan generation
func NewWizardCompletedError() *PlanforgeError {
	return New(ErrCodeWizardCompleted, "wizard session already produced a plan").
		WithSuggestion("Start a new session to collect different answers")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *PlanforgeError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
