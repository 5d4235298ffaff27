// Package wizard implements the multi-step answer collection flow that feeds
// plan generation: step definitions, the accumulated answer record, and the
// controller that drives progression.
package wizard

import "encoding/json"

// FieldType defines the kind of input a field collects
type FieldType string

const (
	// FieldTypeText is free text
	FieldTypeText FieldType = "text"
	// FieldTypeChoice is a single selection from an enumerated option set
	FieldTypeChoice FieldType = "choice"
	// FieldTypeTags is an ordered list of free-text tags
	FieldTypeTags FieldType = "tags"
)

// Field describes a single input collected by a step
type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Options     []string  `json:"options,omitempty"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// StepDefinition is an immutable descriptor for one wizard step.
// The set of steps is fixed at startup and never mutated.
type StepDefinition struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Fields      []Field `json:"fields"`
}

// Answer holds one field's value: either a scalar (text or selected choice)
// or an ordered tag list. Exactly one of Value/Values is populated.
type Answer struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// MarshalJSON encodes scalar answers as bare strings and tag answers as
// arrays, matching the wire shape the assistant endpoint accepts.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Values != nil {
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts a bare string, an array of strings, or the
// structured {value, values} object form.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Value = s
		a.Values = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		a.Value = ""
		a.Values = list
		return nil
	}

	type answerObject struct {
		Value  string   `json:"value"`
		Values []string `json:"values"`
	}
	var obj answerObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Value = obj.Value
	a.Values = obj.Values
	return nil
}

// AnswerRecord is the accumulated user input across all wizard steps,
// keyed by field ID. Keys are absent until the user fills that field.
type AnswerRecord map[string]Answer

// Text returns the scalar value for a field, or "" if absent
func (r AnswerRecord) Text(fieldID string) string {
	return r[fieldID].Value
}

// Tags returns the tag list for a field, or nil if absent
func (r AnswerRecord) Tags(fieldID string) []string {
	return r[fieldID].Values
}

// IsEmpty reports whether a field has no usable value
func (r AnswerRecord) IsEmpty(fieldID string) bool {
	a, ok := r[fieldID]
	if !ok {
		return true
	}
	return a.Value == "" && len(a.Values) == 0
}

// Clone returns a shallow-copied record safe to hand to the synthesizer
// after the final step is submitted.
func (r AnswerRecord) Clone() AnswerRecord {
	out := make(AnswerRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
