package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/planforge/internal/insight"
	"github.com/felixgeelhaar/planforge/internal/plan"
)

// Styles contains the lipgloss styles shared across views
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginTop(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

func (m *Model) renderLanding() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("✦ Planforge"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Your AI-powered marketing growth plan in five quick steps"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Value.Render("Answer a few questions about your business and goals."))
	b.WriteString("\n")
	b.WriteString(m.styles.Value.Render("You get a tailored plan with quick wins, a roadmap, and tooling."))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Help.Render("Press Enter to start • q to quit"))
	b.WriteString("\n")

	return b.String()
}

// renderWizardChrome renders the insight panel above the step form
func (m *Model) renderWizardChrome() string {
	var b strings.Builder

	step := m.controller.CurrentStep()
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("Step %d of %d", step, m.controller.StepCount())))
	b.WriteString("\n")

	hint := insight.For(m.controller.Answers(), step)
	b.WriteString(m.styles.Border.Render(
		m.styles.Section.Render("Coach") + "\n" + m.styles.Value.Render(hint.Insight)))
	b.WriteString("\n")

	if m.fieldErr != "" {
		b.WriteString(m.styles.Error.Render(m.fieldErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderGenerating() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	b.WriteString(m.styles.Section.Render(" Generating your growth plan..."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("This usually takes a few seconds."))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderPlan() string {
	p := m.controller.Plan()
	if p == nil {
		return "No plan generated.\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("✓ Your Growth Plan"))
	b.WriteString("\n")
	if p.Source == plan.SourceFallback {
		b.WriteString(m.styles.Muted.Render("Built from our standard playbook while AI generation was unavailable."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Executive Summary"))
	b.WriteString("\n")
	b.WriteString(m.styles.Value.Render(p.ExecutiveSummary))
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Quick Wins"))
	b.WriteString("\n")
	for i, win := range p.QuickWins {
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("%d. %s", i+1, win.Action)))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("   Impact: ") + m.styles.Value.Render(win.Impact))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("   Timeframe: ") + m.styles.Value.Render(win.Timeframe))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Section.Render("Strategic Initiatives"))
	b.WriteString("\n")
	for _, init := range p.StrategicInitiatives {
		b.WriteString(m.styles.Value.Render("• " + init.Name))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("  " + init.Description))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Section.Render("Roadmap"))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Phase 1: ") + m.styles.Value.Render(p.Roadmap.Phase1))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Phase 2: ") + m.styles.Value.Render(p.Roadmap.Phase2))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Phase 3: ") + m.styles.Value.Render(p.Roadmap.Phase3))
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Recommended Tools"))
	b.WriteString("\n")
	for _, tool := range p.RecommendedTools {
		b.WriteString(m.styles.Value.Render("• "+tool.Tool) + m.styles.Label.Render(" - "+tool.Purpose))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Section.Render("Success Metrics"))
	b.WriteString("\n")
	for _, metric := range p.SuccessMetrics {
		b.WriteString(m.styles.Value.Render("• "+metric.Metric) + m.styles.Label.Render(" → "+metric.Target))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("Press q to exit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderFarewell() string {
	if m.controller.Done() {
		return m.styles.Success.Render("Plan ready.") + " Good luck out there.\n"
	}
	return "Wizard cancelled.\n"
}
