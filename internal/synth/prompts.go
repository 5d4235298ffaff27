package synth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// Neutral defaults substituted for fields the user left blank
const (
	notSpecified = "Not specified"
	genericGoal  = "General improvement"
)

// buildPrompt turns the answer record into a single natural-language
// instruction embedding every field plus the exact JSON shape required.
func buildPrompt(answers wizard.AnswerRecord) string {
	text := func(fieldID string) string {
		if v := answers.Text(fieldID); v != "" {
			return v
		}
		return notSpecified
	}
	tags := func(fieldID string) string {
		if v := answers.Tags(fieldID); len(v) > 0 {
			return strings.Join(v, ", ")
		}
		return notSpecified
	}

	goal := answers.Text("primaryGoal")
	if goal == "" {
		goal = genericGoal
	}

	return fmt.Sprintf(`You are an expert marketing strategist specializing in AI-powered growth for small and mid-size businesses. Create a personalized marketing plan from the following intake answers.

Business name: %s
Industry: %s
Team size: %s
Primary goal: %s
Timeline: %s
Definition of success: %s
Current channels: %s
Monthly budget: %s
Biggest challenge: %s
Target audience: %s
Customer location: %s
Audience interests: %s
AI experience: %s
Preferred tools: %s
Additional notes: %s

Output the plan as JSON with this exact structure:
{
  "executiveSummary": "2-3 sentence overview naming the business and its opportunity",
  "quickWins": [
    {
      "action": "Specific action to take",
      "impact": "Expected impact",
      "tools": ["Tool 1", "Tool 2"],
      "timeframe": "e.g. 1-2 weeks",
      "budget": "optional, e.g. $0-50/month"
    }
  ],
  "strategicInitiatives": [
    {
      "name": "Initiative name",
      "description": "What it involves and why it matters for this business",
      "timeframe": "e.g. 3-6 months",
      "budget": "e.g. $500-1,500/month",
      "expectedReturn": "Expected outcome"
    }
  ],
  "implementationRoadmap": {
    "phase1": "First 30 days",
    "phase2": "Days 31-90",
    "phase3": "Days 91-180"
  },
  "recommendedTools": [
    {
      "tool": "Tool name",
      "purpose": "What it is for",
      "integration": "How it fits their existing setup"
    }
  ],
  "successMetrics": [
    {
      "metric": "What to measure",
      "target": "Concrete target",
      "measurement": "How to measure it"
    }
  ]
}

Important:
- Return ONLY the JSON, no additional text or markdown
- Provide at least 3 quickWins, 2 strategicInitiatives, 3 recommendedTools, and 3 successMetrics
- Tailor every recommendation to the stated budget, audience, and AI comfort level`,
		text("businessName"), text("industry"), text("businessSize"),
		goal, text("timeline"), text("successDefinition"),
		tags("currentChannels"), text("monthlyBudget"), text("biggestChallenge"),
		text("targetAudience"), text("customerLocation"), tags("audienceInterests"),
		text("aiExperience"), tags("toolPreferences"), text("additionalNotes"))
}

// extractJSONFromMarkdown attempts to extract JSON from markdown code blocks
func extractJSONFromMarkdown(content string) string {
	// Try to find JSON in markdown code blocks
	jsonBlockRegex := regexp.MustCompile("```(?:json)?\\s*\\n([\\s\\S]*?)```")
	matches := jsonBlockRegex.FindStringSubmatch(content)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// Try to find JSON without code blocks (look for { ... })
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	// Find the matching closing brace
	braceCount := 0
	for i := start; i < len(content); i++ {
		if content[i] == '{' {
			braceCount++
		} else if content[i] == '}' {
			braceCount--
			if braceCount == 0 {
				return content[start : i+1]
			}
		}
	}

	return ""
}
