package synth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	pferrors "github.com/felixgeelhaar/planforge/internal/errors"
	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

type stubRelay struct {
	response string
	err      error
	prompts  []string
}

func (s *stubRelay) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func validPlanJSON() string {
	p := plan.Fallback("Acme", "Retail")
	p.Source = ""
	data, _ := json.Marshal(p)
	return string(data)
}

func testAnswers() wizard.AnswerRecord {
	return wizard.AnswerRecord{
		"businessName":    {Value: "Acme"},
		"industry":        {Value: "Retail"},
		"currentChannels": {Values: []string{"email", "social"}},
	}
}

func TestSynthesizeSuccess(t *testing.T) {
	relay := &stubRelay{response: validPlanJSON()}
	s := New(relay, nil)

	got := s.Synthesize(context.Background(), testAnswers())

	if got.Source != plan.SourceAI {
		t.Errorf("Source = %q, want %q", got.Source, plan.SourceAI)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("returned plan should validate: %v", err)
	}
	if len(relay.prompts) != 1 {
		t.Fatalf("relay called %d times, want exactly 1 (no retry)", len(relay.prompts))
	}
}

func TestSynthesizeSuccessWithMarkdownFences(t *testing.T) {
	relay := &stubRelay{response: "Here is your plan:\n```json\n" + validPlanJSON() + "\n```\n"}
	s := New(relay, nil)

	got := s.Synthesize(context.Background(), testAnswers())

	if got.Source != plan.SourceAI {
		t.Errorf("Source = %q, want %q (fenced JSON should parse)", got.Source, plan.SourceAI)
	}
}

func TestSynthesizeFallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		relay *stubRelay
	}{
		{"transport error", &stubRelay{err: fmt.Errorf("connection refused")}},
		{"not json", &stubRelay{response: "I am sorry, I cannot help with that."}},
		{"wrong shape", &stubRelay{response: `{"tasks": []}`}},
		{"truncated json", &stubRelay{response: `{"executiveSummary": "Acme`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.relay, nil)
			got := s.Synthesize(context.Background(), testAnswers())

			if got == nil {
				t.Fatal("Synthesize() must never return nil")
			}
			if got.Source != plan.SourceFallback {
				t.Errorf("Source = %q, want %q", got.Source, plan.SourceFallback)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("fallback plan should validate: %v", err)
			}
			// Fallback is parameterized by name and industry
			if !strings.Contains(got.ExecutiveSummary, "Acme") || !strings.Contains(got.ExecutiveSummary, "Retail") {
				t.Errorf("fallback summary should mention business and industry, got: %s", got.ExecutiveSummary)
			}
			if len(tt.relay.prompts) != 1 {
				t.Errorf("relay called %d times, want exactly 1 (failure triggers immediate fallback)", len(tt.relay.prompts))
			}
		})
	}
}

func TestSynthesizeFallbackWithEmptyAnswers(t *testing.T) {
	s := New(&stubRelay{err: fmt.Errorf("boom")}, nil)

	got := s.Synthesize(context.Background(), wizard.AnswerRecord{})

	if !strings.Contains(got.ExecutiveSummary, "your business") {
		t.Errorf("fallback should use generic phrasing when answers are absent, got: %s", got.ExecutiveSummary)
	}
}

func TestBuildPromptEmbedsAnswers(t *testing.T) {
	relay := &stubRelay{response: validPlanJSON()}
	s := New(relay, nil)

	s.Synthesize(context.Background(), testAnswers())

	prompt := relay.prompts[0]
	for _, want := range []string{"Acme", "Retail", "email, social", "executiveSummary", "implementationRoadmap"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
	// Absent fields use neutral defaults
	if !strings.Contains(prompt, notSpecified) {
		t.Errorf("prompt should substitute %q for missing fields", notSpecified)
	}
	if !strings.Contains(prompt, genericGoal) {
		t.Errorf("prompt should substitute %q for a missing goal", genericGoal)
	}
}

func TestExtractJSONFromMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "json code block",
			content: "```json\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "bare code block",
			content: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "embedded object",
			content: `The plan is {"a": {"b": 2}} as requested.`,
			want:    `{"a": {"b": 2}}`,
		},
		{
			name:    "no json at all",
			content: "no structured content here",
			want:    "",
		},
		{
			name:    "unbalanced braces",
			content: `{"a": 1`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONFromMarkdown(tt.content); got != tt.want {
				t.Errorf("extractJSONFromMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynthesizeWithoutRelay(t *testing.T) {
	s := New(nil, nil)

	got := s.Synthesize(context.Background(), testAnswers())

	if got.Source != plan.SourceFallback {
		t.Errorf("Source = %q, want %q", got.Source, plan.SourceFallback)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("fallback plan should validate: %v", err)
	}
}

func TestParsePlanErrorCarriesCode(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json at all", "I cannot produce a plan."},
		{"truncated fenced json", "```json\n{\"executiveSummary\": \"Acme\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePlan(tt.content)
			if err == nil {
				t.Fatal("parsePlan() should fail")
			}

			var pfErr *pferrors.PlanforgeError
			if !errors.As(err, &pfErr) {
				t.Fatalf("error should be a PlanforgeError, got %T", err)
			}
			if pfErr.Code != pferrors.ErrCodePlanParse {
				t.Errorf("Code = %s, want %s", pfErr.Code, pferrors.ErrCodePlanParse)
			}
		})
	}
}
