package wizard

import (
	"context"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/planforge/internal/errors"
	"github.com/felixgeelhaar/planforge/internal/plan"
)

// Synthesizer turns a completed answer record into a plan.
// It never fails: generation errors are absorbed into the fallback plan.
type Synthesizer interface {
	Synthesize(ctx context.Context, answers AnswerRecord) *plan.GeneratedPlan
}

// Controller owns one wizard session: the ordered steps, the current-step
// pointer, the accumulated answers, and the transition into plan generation.
// It is driven by a single goroutine per session and needs no locking.
type Controller struct {
	sessionID  string
	steps      []StepDefinition
	current    int // 1-indexed, clamped to [1, len(steps)]
	answers    AnswerRecord
	plan       *plan.GeneratedPlan
	generating bool
	synth      Synthesizer
}

// NewController creates a session positioned at step 1 with empty answers
func NewController(synth Synthesizer) *Controller {
	return &Controller{
		sessionID: uuid.New().String(),
		steps:     Steps(),
		current:   1,
		answers:   make(AnswerRecord),
		synth:     synth,
	}
}

// SessionID returns the session's unique identifier
func (c *Controller) SessionID() string {
	return c.sessionID
}

// CurrentStep returns the 1-indexed current step number
func (c *Controller) CurrentStep() int {
	return c.current
}

// StepCount returns the total number of steps
func (c *Controller) StepCount() int {
	return len(c.steps)
}

// Current returns the active step definition
func (c *Controller) Current() StepDefinition {
	return c.steps[c.current-1]
}

// Answers returns the live answer record
func (c *Controller) Answers() AnswerRecord {
	return c.answers
}

// Generating reports whether plan generation is in flight
func (c *Controller) Generating() bool {
	return c.generating
}

// Done reports whether the session produced a plan. Once true, the
// controller is terminal: answers are frozen and there is no redo.
func (c *Controller) Done() bool {
	return c.plan != nil
}

// Plan returns the generated plan, or nil before completion
func (c *Controller) Plan() *plan.GeneratedPlan {
	return c.plan
}

// UpdateField merges one key into the answer record (shallow overwrite)
func (c *Controller) UpdateField(fieldID string, a Answer) error {
	if c.Done() {
		return errors.NewWizardCompletedError()
	}
	c.answers[fieldID] = a
	return nil
}

// AppendTag appends a tag to a tag field. Appending a duplicate is a
// no-op; insertion order of distinct tags is preserved.
func (c *Controller) AppendTag(fieldID, tag string) error {
	if c.Done() {
		return errors.NewWizardCompletedError()
	}
	if tag == "" {
		return nil
	}

	a := c.answers[fieldID]
	for _, existing := range a.Values {
		if existing == tag {
			return nil
		}
	}
	a.Values = append(a.Values, tag)
	a.Value = ""
	c.answers[fieldID] = a
	return nil
}

// RemoveTag removes the tag at index, keeping the relative order of the
// remaining tags. Out-of-range indexes are a no-op.
func (c *Controller) RemoveTag(fieldID string, index int) error {
	if c.Done() {
		return errors.NewWizardCompletedError()
	}

	a := c.answers[fieldID]
	if index < 0 || index >= len(a.Values) {
		return nil
	}
	a.Values = append(a.Values[:index], a.Values[index+1:]...)
	c.answers[fieldID] = a
	return nil
}

// Retreat moves back one step; at step 1 it is a no-op
func (c *Controller) Retreat() {
	if c.current > 1 {
		c.current--
	}
}

// Advance validates the current step's required fields and moves forward.
// At the final step it invokes the synthesizer exactly once with the frozen
// answer record; the generating flag is true for the duration of that call.
func (c *Controller) Advance(ctx context.Context) error {
	if c.Done() {
		return errors.NewWizardCompletedError()
	}

	if missing := c.missingRequired(); len(missing) > 0 {
		return errors.NewWizardFieldRequiredError(missing)
	}

	if c.current < len(c.steps) {
		c.current++
		return nil
	}

	c.generating = true
	c.plan = c.synth.Synthesize(ctx, c.answers.Clone())
	c.generating = false
	return nil
}

// missingRequired lists required fields of the active step without a value
func (c *Controller) missingRequired() []string {
	var missing []string
	for _, f := range c.Current().Fields {
		if f.Required && c.answers.IsEmpty(f.ID) {
			missing = append(missing, f.ID)
		}
	}
	return missing
}
