package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/felixgeelhaar/planforge/internal/errors"
	"github.com/felixgeelhaar/planforge/internal/insight"
	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// assistantAction is the wire-level action discriminator
type assistantAction string

const (
	actionStepInsights assistantAction = "stepInsights"
	actionGeneratePlan assistantAction = "generatePlan"
)

// assistantEnvelope is the raw request body of POST /api/assistant
type assistantEnvelope struct {
	Action assistantAction     `json:"action"`
	Data   wizard.AnswerRecord `json:"data"`
	Step   int                 `json:"step,omitempty"`
}

// assistantRequest is the resolved, typed form of an assistant request.
// The untyped action string is mapped to exactly one variant up front so
// handlers dispatch on a closed set instead of re-inspecting strings.
type assistantRequest interface {
	isAssistantRequest()
}

type stepInsightsRequest struct {
	Answers wizard.AnswerRecord
	Step    int
}

type generatePlanRequest struct {
	Answers wizard.AnswerRecord
}

func (stepInsightsRequest) isAssistantRequest() {}
func (generatePlanRequest) isAssistantRequest() {}

// resolveAssistantRequest validates the envelope and returns its variant
func resolveAssistantRequest(env assistantEnvelope) (assistantRequest, error) {
	switch env.Action {
	case actionStepInsights:
		return stepInsightsRequest{Answers: env.Data, Step: env.Step}, nil
	case actionGeneratePlan:
		return generatePlanRequest{Answers: env.Data}, nil
	default:
		return nil, fmt.Errorf("unknown action: %q", env.Action)
	}
}

type insightResponse struct {
	Insight     string   `json:"insight"`
	Suggestions []string `json:"suggestions"`
}

type planResponse struct {
	Plan *plan.GeneratedPlan `json:"plan"`
}

type relayRequest struct {
	Prompt string `json:"prompt"`
}

type relaySuccessResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

type relayFailureResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Fallback bool   `json:"fallback"`
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleAssistantPost(w, r)
	case http.MethodGet:
		s.handleAssistantGet(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	}
}

func (s *Server) handleAssistantPost(w http.ResponseWriter, r *http.Request) {
	var env assistantEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		// Detail stays server-side; the caller gets a bare 500.
		s.logger.WithError(err).Error("malformed assistant request body")
		writeInternalError(w)
		return
	}

	req, err := resolveAssistantRequest(env)
	if err != nil {
		s.logger.WithError(err).Error("assistant request rejected")
		writeInternalError(w)
		return
	}

	switch req := req.(type) {
	case stepInsightsRequest:
		result := insight.For(req.Answers, req.Step)
		writeJSON(w, http.StatusOK, insightResponse{
			Insight:     result.Insight,
			Suggestions: result.Suggestions,
		})

	case generatePlanRequest:
		answers := req.Answers
		if answers == nil {
			answers = make(wizard.AnswerRecord)
		}
		generated := s.deps.Synthesizer.Synthesize(r.Context(), answers)
		s.logger.Info("plan generated",
			"source", string(generated.Source),
			"business", answers.Text("businessName"),
		)
		writeJSON(w, http.StatusOK, planResponse{Plan: generated})
	}
}

func (s *Server) handleAssistantGet(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id query parameter is required"})
		return
	}

	stored, err := s.deps.Store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, planResponse{Plan: stored})
}

func (s *Server) handleRelay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req relayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		s.logger.Error("malformed relay request body")
		writeJSON(w, http.StatusInternalServerError, relayFailureResponse{
			Error:    "Internal server error",
			Fallback: true,
		})
		return
	}

	if s.deps.Relay == nil {
		s.logger.LogError(errors.NewCredentialMissingError())
		writeJSON(w, http.StatusInternalServerError, relayFailureResponse{
			Error:    "Internal server error",
			Fallback: true,
		})
		return
	}

	content, err := s.deps.Relay.Complete(r.Context(), req.Prompt)
	if err != nil {
		s.logger.WithError(err).Error("relay completion failed")
		writeJSON(w, http.StatusInternalServerError, relayFailureResponse{
			Error:    "Failed to generate response",
			Fallback: true,
		})
		return
	}

	writeJSON(w, http.StatusOK, relaySuccessResponse{Success: true, Content: content})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
