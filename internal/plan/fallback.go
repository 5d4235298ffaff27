package plan

import "fmt"

// Fallback returns the static plan used when AI generation fails.
// It is parameterized only by business name and industry; absent values
// fall back to generic phrasing. The returned plan always passes Validate.
func Fallback(businessName, industry string) *GeneratedPlan {
	if businessName == "" {
		businessName = "your business"
	}
	if industry == "" {
		industry = "your industry"
	}

	return &GeneratedPlan{
		ExecutiveSummary: fmt.Sprintf(
			"%s has a strong opportunity to accelerate growth in the %s market through AI-powered marketing automation. "+
				"By focusing on quick wins first and layering in strategic initiatives over the next two quarters, "+
				"%s can build a repeatable acquisition engine while keeping spend efficient.",
			businessName, industry, businessName),
		QuickWins: []QuickWin{
			{
				Action:    "Set up automated email welcome sequences for new leads",
				Impact:    "Recover 15-25% of leads that would otherwise go cold",
				Tools:     []string{"Mailchimp", "HubSpot"},
				Timeframe: "1-2 weeks",
				Budget:    "$0-50/month",
			},
			{
				Action:    fmt.Sprintf("Claim and optimize local business listings for %s", businessName),
				Impact:    "Improve local search visibility and inbound discovery",
				Tools:     []string{"Google Business Profile"},
				Timeframe: "1 week",
			},
			{
				Action:    "Add AI chat assistance to the highest-traffic landing page",
				Impact:    "Capture questions from visitors outside business hours",
				Tools:     []string{"Intercom", "Drift"},
				Timeframe: "2-3 weeks",
				Budget:    "$50-150/month",
			},
		},
		StrategicInitiatives: []Initiative{
			{
				Name:           "Content engine with AI drafting",
				Description:    fmt.Sprintf("Build a weekly publishing cadence targeting the questions %s buyers ask, with AI-assisted drafting and human editing.", industry),
				Timeframe:      "3-6 months",
				Budget:         "$500-1,500/month",
				ExpectedReturn: "2-3x organic traffic within two quarters",
			},
			{
				Name:           "Lifecycle scoring and segmentation",
				Description:    "Score leads by engagement and route hot segments to tailored nurture tracks instead of one generic list.",
				Timeframe:      "2-4 months",
				Budget:         "$200-800/month",
				ExpectedReturn: "10-20% lift in lead-to-customer conversion",
			},
		},
		Roadmap: Roadmap{
			Phase1: "Weeks 1-4: ship the quick wins, instrument analytics, and establish a baseline for traffic and conversion.",
			Phase2: "Months 2-3: launch the content engine and lifecycle segmentation, and begin A/B testing landing pages.",
			Phase3: "Months 4-6: scale the channels that proved out, automate reporting, and expand into paid acquisition.",
		},
		RecommendedTools: []Tool{
			{
				Tool:        "HubSpot",
				Purpose:     "CRM and marketing automation backbone",
				Integration: "Connect web forms and email sequences first; expand to lifecycle scoring later",
			},
			{
				Tool:        "Google Analytics 4",
				Purpose:     "Traffic and conversion measurement",
				Integration: "Install before any campaign changes so the baseline is trustworthy",
			},
			{
				Tool:        "Canva",
				Purpose:     "Fast, on-brand creative production",
				Integration: "Standalone; share brand kit with anyone producing campaign assets",
			},
		},
		SuccessMetrics: []Metric{
			{
				Metric:      "Qualified leads per month",
				Target:      "+30% within 90 days",
				Measurement: "CRM lead reports, filtered to qualified stages",
			},
			{
				Metric:      "Email engagement rate",
				Target:      "25%+ open rate, 3%+ click rate",
				Measurement: "Email platform campaign analytics",
			},
			{
				Metric:      "Cost per acquisition",
				Target:      "-20% within two quarters",
				Measurement: "Total marketing spend divided by new customers",
			},
		},
		Source: SourceFallback,
	}
}
