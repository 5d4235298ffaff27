package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

type staticSynth struct{}

func (staticSynth) Synthesize(_ context.Context, answers wizard.AnswerRecord) *plan.GeneratedPlan {
	return plan.Fallback(answers.Text("businessName"), answers.Text("industry"))
}

func newTestModel() *Model {
	return NewModel(wizard.NewController(staticSynth{}))
}

func TestNewModelStartsAtLanding(t *testing.T) {
	model := newTestModel()

	if model.view != ViewLanding {
		t.Errorf("Expected ViewLanding, got %v", model.view)
	}

	if model.quitting {
		t.Error("Expected quitting to be false by default")
	}
}

func TestLandingEnterOpensWizard(t *testing.T) {
	model := newTestModel()

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updated.(*Model)

	if m.view != ViewWizard {
		t.Errorf("Expected ViewWizard after Enter, got %v", m.view)
	}

	if m.form == nil {
		t.Fatal("Expected a form for the first step")
	}
}

func TestCtrlCQuitsFromAnyView(t *testing.T) {
	for _, view := range []ViewType{ViewLanding, ViewWizard, ViewGenerating, ViewPlan} {
		model := newTestModel()
		model.view = view

		updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m := updated.(*Model)

		if !m.quitting {
			t.Errorf("view %v: expected quitting after ctrl+c", view)
		}
		if cmd == nil {
			t.Errorf("view %v: expected quit command", view)
		}
	}
}

func TestPlanReadySwitchesToPlanView(t *testing.T) {
	model := newTestModel()
	model.view = ViewGenerating

	updated, _ := model.Update(planReadyMsg{plan: plan.Fallback("Acme", "Retail")})
	m := updated.(*Model)

	if m.view != ViewPlan {
		t.Errorf("Expected ViewPlan, got %v", m.view)
	}
}

func TestValidationMessageRebuildsForm(t *testing.T) {
	model := newTestModel()
	model.view = ViewWizard
	model.form, model.values = newStepForm(model.controller.Current(), model.controller.Answers())

	updated, _ := model.Update(stepValidationMsg{err: errFake("missing required fields")})
	m := updated.(*Model)

	if m.fieldErr == "" {
		t.Error("Expected validation error to be surfaced")
	}
	if m.view != ViewWizard {
		t.Errorf("Expected to stay on ViewWizard, got %v", m.view)
	}
	if m.form == nil {
		t.Error("Expected form to be rebuilt")
	}
}

func TestValidationDuringGenerationReturnsToWizard(t *testing.T) {
	model := newTestModel()
	model.view = ViewGenerating

	updated, _ := model.Update(stepValidationMsg{err: errFake("required fields are missing")})
	m := updated.(*Model)

	if m.view != ViewWizard {
		t.Errorf("Expected ViewWizard after a rejected advance, got %v", m.view)
	}
	if m.form == nil {
		t.Error("Expected a form so the user can correct the step")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }

func TestLandingViewContent(t *testing.T) {
	model := newTestModel()

	out := model.View()
	if !strings.Contains(out, "Planforge") {
		t.Errorf("Expected landing view to contain product name, got:\n%s", out)
	}
	if !strings.Contains(out, "Enter") {
		t.Error("Expected landing view to mention the start key")
	}
}

func TestGeneratingViewContent(t *testing.T) {
	model := newTestModel()
	model.view = ViewGenerating

	out := model.View()
	if !strings.Contains(out, "Generating") {
		t.Errorf("Expected generating view to show progress text, got:\n%s", out)
	}
}

func TestPlanViewRendersAllSections(t *testing.T) {
	model := newTestModel()
	model.view = ViewPlan

	model.controller.UpdateField("businessName", wizard.Answer{Value: "Acme"})
	model.controller.UpdateField("industry", wizard.Answer{Value: "Retail"})
	model.controller.UpdateField("targetAudience", wizard.Answer{Value: "homeowners"})
	model.controller.UpdateField("primaryGoal", wizard.Answer{Value: "Generate more leads"})
	for i := 0; i < model.controller.StepCount(); i++ {
		if err := model.controller.Advance(context.Background()); err != nil {
			t.Fatalf("Advance step %d: %v", i+1, err)
		}
	}

	out := model.View()
	for _, section := range []string{
		"Executive Summary", "Quick Wins", "Strategic Initiatives",
		"Roadmap", "Recommended Tools", "Success Metrics",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("Expected plan view to contain %q", section)
		}
	}
	if !strings.Contains(out, "Acme") {
		t.Error("Expected plan view to mention the business name")
	}
	if !strings.Contains(out, "standard playbook") {
		t.Error("Expected fallback provenance note")
	}
}

func TestPlanViewWithoutPlan(t *testing.T) {
	model := newTestModel()
	model.view = ViewPlan

	out := model.View()
	if !strings.Contains(out, "No plan generated") {
		t.Errorf("Expected empty-plan message, got:\n%s", out)
	}
}
