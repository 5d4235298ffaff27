package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// stepValues holds the form's bound values for one step, keyed by field ID.
// huh binds to pointers, so the map owns the backing storage until the form
// completes and the values flow into the controller.
type stepValues struct {
	text map[string]*string
	tags map[string]*string
}

// newStepForm builds a huh form for one wizard step, pre-filled from any
// answers the user already gave when revisiting the step.
func newStepForm(step wizard.StepDefinition, answers wizard.AnswerRecord) (*huh.Form, *stepValues) {
	values := &stepValues{
		text: make(map[string]*string),
		tags: make(map[string]*string),
	}

	var fields []huh.Field
	for _, f := range step.Fields {
		fields = append(fields, newFormField(f, answers, values))
	}

	form := huh.NewForm(
		huh.NewGroup(fields...).
			Title(fmt.Sprintf("Step %d: %s", step.ID, step.Title)).
			Description(step.Description),
	)
	return form, values
}

func newFormField(f wizard.Field, answers wizard.AnswerRecord, values *stepValues) huh.Field {
	switch f.Type {
	case wizard.FieldTypeChoice:
		var options []huh.Option[string]
		for _, opt := range f.Options {
			options = append(options, huh.NewOption(opt, opt))
		}

		val := answers.Text(f.ID)
		values.text[f.ID] = &val

		return huh.NewSelect[string]().
			Key(f.ID).
			Title(f.Label).
			Options(options...).
			Value(&val).
			Validate(requiredSelect(f))

	case wizard.FieldTypeTags:
		// Tags are entered one per line; splitting happens on submit.
		val := strings.Join(answers.Tags(f.ID), "\n")
		values.tags[f.ID] = &val

		return huh.NewText().
			Key(f.ID).
			Title(f.Label).
			Placeholder(f.Placeholder).
			Value(&val)

	default:
		val := answers.Text(f.ID)
		values.text[f.ID] = &val

		return huh.NewInput().
			Key(f.ID).
			Title(f.Label).
			Placeholder(f.Placeholder).
			Value(&val).
			Validate(requiredInput(f))
	}
}

func requiredInput(f wizard.Field) func(string) error {
	return func(s string) error {
		if f.Required && strings.TrimSpace(s) == "" {
			return fmt.Errorf("this field is required")
		}
		return nil
	}
}

func requiredSelect(f wizard.Field) func(string) error {
	return func(s string) error {
		if f.Required && s == "" {
			return fmt.Errorf("please select an option")
		}
		return nil
	}
}

// applyStepValues writes the submitted form values into the controller.
// Tag fields are replaced wholesale: the textarea holds the full list, so
// tags the user removed before resubmitting must not survive.
func applyStepValues(c *wizard.Controller, step wizard.StepDefinition, values *stepValues) {
	for _, f := range step.Fields {
		switch f.Type {
		case wizard.FieldTypeTags:
			raw := ""
			if p, ok := values.tags[f.ID]; ok {
				raw = *p
			}
			_ = c.UpdateField(f.ID, wizard.Answer{Values: splitTags(raw)})
		default:
			val := ""
			if p, ok := values.text[f.ID]; ok {
				val = strings.TrimSpace(*p)
			}
			if val != "" {
				_ = c.UpdateField(f.ID, wizard.Answer{Value: val})
			}
		}
	}
}

// splitTags parses newline- or comma-separated tag input, dropping empties
// and duplicates while keeping first-seen order
func splitTags(raw string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		for _, part := range strings.Split(line, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" || seen[trimmed] {
				continue
			}
			seen[trimmed] = true
			tags = append(tags, trimmed)
		}
	}
	return tags
}
