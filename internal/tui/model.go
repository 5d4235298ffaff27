// Package tui implements the terminal wizard: a view router that moves the
// user from the landing screen through the five-step form to the rendered
// plan, backed by the same controller and synthesizer as the HTTP API.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// ViewType identifies the active screen
type ViewType int

const (
	// ViewLanding is the welcome screen shown before the wizard starts
	ViewLanding ViewType = iota
	// ViewWizard is the active step form
	ViewWizard
	// ViewGenerating is the spinner shown while the plan is synthesized
	ViewGenerating
	// ViewPlan is the rendered plan
	ViewPlan
)

// planReadyMsg carries the generated plan back into the update loop
type planReadyMsg struct {
	plan *plan.GeneratedPlan
}

// stepValidationMsg surfaces a rejected step advance
type stepValidationMsg struct {
	err error
}

// Model is the Bubble Tea model routing between the wizard views
type Model struct {
	controller *wizard.Controller
	form       *huh.Form
	values     *stepValues
	spinner    spinner.Model
	view       ViewType
	styles     Styles
	width      int
	height     int
	quitting   bool
	fieldErr   string
}

// NewModel creates the model positioned at the landing view
func NewModel(controller *wizard.Controller) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return &Model{
		controller: controller,
		spinner:    sp,
		view:       ViewLanding,
		styles:     DefaultStyles(),
	}
}

// Init initializes the model (required by Bubble Tea)
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and routes between views (required by Bubble Tea)
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.view {
		case ViewLanding:
			if msg.String() == "enter" {
				return m.enterWizard()
			}
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case ViewPlan:
			if msg.String() == "q" || msg.String() == "enter" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case spinner.TickMsg:
		if m.view == ViewGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case planReadyMsg:
		m.view = ViewPlan
		return m, nil

	case stepValidationMsg:
		// The rejection may arrive while the generating spinner is up.
		m.view = ViewWizard
		m.fieldErr = msg.err.Error()
		return m.rebuildForm()
	}

	if m.view == ViewWizard && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
			if m.form.State == huh.StateCompleted {
				return m.submitStep()
			}
		}
		return m, cmd
	}

	return m, nil
}

// View renders the active screen (required by Bubble Tea)
func (m *Model) View() string {
	if m.quitting {
		return m.renderFarewell()
	}

	switch m.view {
	case ViewLanding:
		return m.renderLanding()
	case ViewWizard:
		if m.form != nil {
			return m.renderWizardChrome() + m.form.View()
		}
		return "Loading...\n"
	case ViewGenerating:
		return m.renderGenerating()
	case ViewPlan:
		return m.renderPlan()
	default:
		return "Unknown view"
	}
}

// enterWizard transitions from the landing view into the first step
func (m *Model) enterWizard() (tea.Model, tea.Cmd) {
	m.view = ViewWizard
	return m.rebuildForm()
}

// rebuildForm creates a fresh form for the controller's current step
func (m *Model) rebuildForm() (tea.Model, tea.Cmd) {
	m.form, m.values = newStepForm(m.controller.Current(), m.controller.Answers())
	return m, m.form.Init()
}

// submitStep writes the completed form into the controller and advances.
// The final step switches to the generating view and runs synthesis off
// the update loop.
func (m *Model) submitStep() (tea.Model, tea.Cmd) {
	m.fieldErr = ""
	applyStepValues(m.controller, m.controller.Current(), m.values)

	final := m.controller.CurrentStep() == m.controller.StepCount()
	if !final {
		if err := m.controller.Advance(context.Background()); err != nil {
			return m, func() tea.Msg { return stepValidationMsg{err: err} }
		}
		return m.rebuildForm()
	}

	m.view = ViewGenerating
	controller := m.controller
	generate := func() tea.Msg {
		if err := controller.Advance(context.Background()); err != nil {
			return stepValidationMsg{err: err}
		}
		return planReadyMsg{plan: controller.Plan()}
	}
	return m, tea.Batch(m.spinner.Tick, generate)
}

// Run starts the TUI and blocks until the user exits. It returns the
// generated plan when the wizard ran to completion, nil when the user
// quit early.
func Run(controller *wizard.Controller) (*plan.GeneratedPlan, error) {
	model := NewModel(controller)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run TUI: %w", err)
	}

	m, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("invalid final model type")
	}
	return m.controller.Plan(), nil
}
