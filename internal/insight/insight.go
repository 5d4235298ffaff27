// Package insight serves the static per-step hints shown beside the wizard.
package insight

import "github.com/felixgeelhaar/planforge/internal/wizard"

// Insight is a step-indexed hint plus a fixed suggestion list
type Insight struct {
	Insight     string   `json:"insight"`
	Suggestions []string `json:"suggestions"`
}

// stepInsights is keyed by step number. No AI call happens here.
var stepInsights = map[int]string{
	1: "Great start! Knowing your industry lets us match tactics that already work for businesses like yours.",
	2: "Clear goals make better plans. A specific target beats a vague ambition every time.",
	3: "Be honest about what you do today - the plan builds on your existing channels instead of replacing them.",
	4: "The sharper your audience description, the more precise the messaging recommendations get.",
	5: "Almost done! Your comfort with AI tooling decides how much of the plan we automate versus keep hands-on.",
}

const genericInsight = "Keep going - every answer makes your plan more specific to your business."

var suggestions = []string{
	"Short, concrete answers work better than long ones",
	"You can go back and change earlier answers before finishing",
	"Skip optional fields if you're unsure; the plan fills sensible defaults",
}

// For returns the insight for a step. The answer record is accepted for
// interface parity but not consulted; insights are a pure function of step.
// Steps outside the wizard range map to the generic continue message.
func For(_ wizard.AnswerRecord, step int) Insight {
	text, ok := stepInsights[step]
	if !ok {
		text = genericInsight
	}

	out := make([]string, len(suggestions))
	copy(out, suggestions)

	return Insight{
		Insight:     text,
		Suggestions: out,
	}
}
