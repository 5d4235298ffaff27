// Package plan defines the generated marketing plan structure shared by the
// synthesizer, the HTTP API, and the terminal views.
package plan

// Source identifies where a plan's content came from
type Source string

const (
	// SourceAI marks a plan parsed from a live completion response
	SourceAI Source = "ai"
	// SourceFallback marks the static plan used when generation fails
	SourceFallback Source = "fallback"
)

// GeneratedPlan is the structured growth plan returned to callers.
// The shape is identical regardless of Source; callers never need to
// distinguish AI-generated from fallback content structurally.
type GeneratedPlan struct {
	ExecutiveSummary     string       `json:"executiveSummary"`
	QuickWins            []QuickWin   `json:"quickWins"`
	StrategicInitiatives []Initiative `json:"strategicInitiatives"`
	Roadmap              Roadmap      `json:"implementationRoadmap"`
	RecommendedTools     []Tool       `json:"recommendedTools"`
	SuccessMetrics       []Metric     `json:"successMetrics"`
	Source               Source       `json:"source,omitempty"`
}

// QuickWin is a low-effort action with near-term impact
type QuickWin struct {
	Action    string   `json:"action"`
	Impact    string   `json:"impact"`
	Tools     []string `json:"tools"`
	Timeframe string   `json:"timeframe"`
	Budget    string   `json:"budget,omitempty"`
}

// Initiative is a longer-horizon strategic investment
type Initiative struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Timeframe      string `json:"timeframe"`
	Budget         string `json:"budget"`
	ExpectedReturn string `json:"expectedReturn"`
}

// Roadmap groups the plan into three named phases
type Roadmap struct {
	Phase1 string `json:"phase1"`
	Phase2 string `json:"phase2"`
	Phase3 string `json:"phase3"`
}

// Tool is a recommended piece of marketing tooling
type Tool struct {
	Tool        string `json:"tool"`
	Purpose     string `json:"purpose"`
	Integration string `json:"integration"`
}

// Metric defines how plan success is measured
type Metric struct {
	Metric      string `json:"metric"`
	Target      string `json:"target"`
	Measurement string `json:"measurement"`
}

// Validate checks the structural invariants every returned plan must satisfy
func (p *GeneratedPlan) Validate() error {
	if p.ExecutiveSummary == "" {
		return errMissing("executiveSummary")
	}
	if len(p.QuickWins) == 0 {
		return errMissing("quickWins")
	}
	if len(p.StrategicInitiatives) == 0 {
		return errMissing("strategicInitiatives")
	}
	if p.Roadmap.Phase1 == "" || p.Roadmap.Phase2 == "" || p.Roadmap.Phase3 == "" {
		return errMissing("implementationRoadmap")
	}
	if len(p.RecommendedTools) == 0 {
		return errMissing("recommendedTools")
	}
	if len(p.SuccessMetrics) == 0 {
		return errMissing("successMetrics")
	}
	return nil
}
