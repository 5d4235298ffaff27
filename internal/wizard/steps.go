package wizard

// Steps returns the fixed five-step wizard definition
func Steps() []StepDefinition {
	return []StepDefinition{
		{
			ID:          1,
			Title:       "Business Basics",
			Description: "Tell us about your business so recommendations fit your reality",
			Icon:        "building",
			Fields: []Field{
				{
					ID:          "businessName",
					Label:       "What is your business called?",
					Type:        FieldTypeText,
					Required:    true,
					Placeholder: "e.g. Acme Outfitters",
				},
				{
					ID:       "industry",
					Label:    "What industry are you in?",
					Type:     FieldTypeChoice,
					Required: true,
					Options: []string{
						"Retail", "E-commerce", "Professional Services", "Health & Wellness",
						"Food & Beverage", "Technology", "Real Estate", "Other",
					},
				},
				{
					ID:      "businessSize",
					Label:   "How big is your team?",
					Type:    FieldTypeChoice,
					Options: []string{"Just me", "2-10", "11-50", "51-200", "200+"},
				},
			},
		},
		{
			ID:          2,
			Title:       "Growth Goals",
			Description: "What does success look like over the next year?",
			Icon:        "target",
			Fields: []Field{
				{
					ID:       "primaryGoal",
					Label:    "What is your primary marketing goal?",
					Type:     FieldTypeChoice,
					Required: true,
					Options: []string{
						"Generate more leads", "Increase brand awareness", "Improve customer retention",
						"Launch a new product", "Enter a new market",
					},
				},
				{
					ID:      "timeline",
					Label:   "What timeline are you working toward?",
					Type:    FieldTypeChoice,
					Options: []string{"1-3 months", "3-6 months", "6-12 months", "12+ months"},
				},
				{
					ID:          "successDefinition",
					Label:       "How will you know the plan worked?",
					Type:        FieldTypeText,
					Placeholder: "e.g. 50 qualified leads a month",
				},
			},
		},
		{
			ID:          3,
			Title:       "Current Marketing",
			Description: "Where are you today, and what is holding you back?",
			Icon:        "chart",
			Fields: []Field{
				{
					ID:          "currentChannels",
					Label:       "Which channels do you use today?",
					Type:        FieldTypeTags,
					Placeholder: "e.g. Instagram, email newsletter",
				},
				{
					ID:      "monthlyBudget",
					Label:   "What is your monthly marketing budget?",
					Type:    FieldTypeChoice,
					Options: []string{"Under $500", "$500-2,000", "$2,000-10,000", "$10,000+"},
				},
				{
					ID:          "biggestChallenge",
					Label:       "What is your biggest marketing challenge?",
					Type:        FieldTypeText,
					Placeholder: "e.g. leads go cold before sales can follow up",
				},
			},
		},
		{
			ID:          4,
			Title:       "Target Audience",
			Description: "Who are you trying to reach?",
			Icon:        "people",
			Fields: []Field{
				{
					ID:          "targetAudience",
					Label:       "Describe your ideal customer",
					Type:        FieldTypeText,
					Required:    true,
					Placeholder: "e.g. homeowners aged 30-55 in the metro area",
				},
				{
					ID:      "customerLocation",
					Label:   "Where are your customers?",
					Type:    FieldTypeChoice,
					Options: []string{"Local", "Regional", "National", "International"},
				},
				{
					ID:          "audienceInterests",
					Label:       "What does your audience care about?",
					Type:        FieldTypeTags,
					Placeholder: "e.g. sustainability, convenience",
				},
			},
		},
		{
			ID:          5,
			Title:       "AI Readiness",
			Description: "How comfortable are you with AI-powered tooling?",
			Icon:        "sparkles",
			Fields: []Field{
				{
					ID:      "aiExperience",
					Label:   "How much have you used AI tools for marketing?",
					Type:    FieldTypeChoice,
					Options: []string{"Not at all", "Experimented a little", "Use them regularly", "Heavily automated already"},
				},
				{
					ID:          "toolPreferences",
					Label:       "Any tools you already use or prefer?",
					Type:        FieldTypeTags,
					Placeholder: "e.g. HubSpot, Canva",
				},
				{
					ID:          "additionalNotes",
					Label:       "Anything else we should know?",
					Type:        FieldTypeText,
					Placeholder: "Optional context for the plan",
				},
			},
		},
	}
}
