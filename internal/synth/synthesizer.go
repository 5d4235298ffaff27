// Package synth builds a generation prompt from wizard answers, invokes the
// completion relay, and parses the result into a structured plan. Failure of
// any kind is absorbed into the static fallback plan; nothing escapes this
// boundary as an error.
package synth

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/planforge/internal/errors"
	"github.com/felixgeelhaar/planforge/internal/log"
	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// Completer is the relay contract the synthesizer depends on
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Synthesizer generates plans from completed answer records
type Synthesizer struct {
	relay  Completer
	logger *log.Logger
}

// New creates a Synthesizer backed by the given relay. A nil relay yields
// fallback plans unconditionally.
func New(relay Completer, logger *log.Logger) *Synthesizer {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Synthesizer{
		relay:  relay,
		logger: logger,
	}
}

// Synthesize produces a plan for the given answers. Transport failures,
// non-success statuses, and unparseable responses all yield the fallback
// plan; a single failure triggers it immediately, with no retry.
func (s *Synthesizer) Synthesize(ctx context.Context, answers wizard.AnswerRecord) *plan.GeneratedPlan {
	businessName := answers.Text("businessName")
	industry := answers.Text("industry")

	if s.relay == nil {
		return plan.Fallback(businessName, industry)
	}

	content, err := s.relay.Complete(ctx, buildPrompt(answers))
	if err != nil {
		s.logger.WithError(err).Warn("completion failed, using fallback plan",
			"business", businessName,
		)
		return plan.Fallback(businessName, industry)
	}

	generated, err := parsePlan(content)
	if err != nil {
		s.logger.WithError(err).Warn("response did not parse as a plan, using fallback",
			"business", businessName,
		)
		return plan.Fallback(businessName, industry)
	}

	generated.Source = plan.SourceAI
	return generated
}

// parsePlan decodes the response text as a GeneratedPlan, falling back to
// markdown code-fence extraction when the model wrapped its output.
func parsePlan(content string) (*plan.GeneratedPlan, error) {
	var p plan.GeneratedPlan
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		jsonContent := extractJSONFromMarkdown(content)
		if jsonContent == "" {
			return nil, errors.NewPlanParseError(err)
		}
		if err := json.Unmarshal([]byte(jsonContent), &p); err != nil {
			return nil, errors.NewPlanParseError(err)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
