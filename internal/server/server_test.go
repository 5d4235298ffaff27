package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planforge/internal/health"
	"github.com/felixgeelhaar/planforge/internal/log"
	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/synth"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// fallbackSynth produces the static fallback plan, mimicking a synthesizer
// whose relay is unreachable.
type fallbackSynth struct {
	calls int
}

func (f *fallbackSynth) Synthesize(_ context.Context, answers wizard.AnswerRecord) *plan.GeneratedPlan {
	f.calls++
	return plan.Fallback(answers.Text("businessName"), answers.Text("industry"))
}

type stubCompleter struct {
	content string
	err     error
	prompt  string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func newTestServer(t *testing.T, relay synth.Completer) (*Server, *fallbackSynth) {
	t.Helper()
	synthesizer := &fallbackSynth{}
	srv := NewServer(Deps{
		Synthesizer: synthesizer,
		Relay:       relay,
		Store:       plan.NewMemoryStore(),
		Probes:      health.NewProbeManager("test"),
		Logger:      log.New(log.DefaultConfig()),
	}, Config{Address: ":0"})
	return srv, synthesizer
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAssistantStepInsights(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/assistant", map[string]any{
		"action": "stepInsights",
		"data":   map[string]any{"businessName": "Acme"},
		"step":   1,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp insightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Insight)
	assert.Len(t, resp.Suggestions, 3)
}

func TestAssistantStepInsightsOutOfRangeStep(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	for _, step := range []int{0, 6, 100} {
		rec := postJSON(t, handler, "/api/assistant", map[string]any{
			"action": "stepInsights",
			"data":   map[string]any{},
			"step":   step,
		})
		require.Equal(t, http.StatusOK, rec.Code, "step %d", step)

		var resp insightResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Insight)
		assert.Len(t, resp.Suggestions, 3)
	}
}

func TestAssistantGeneratePlanFallback(t *testing.T) {
	srv, synthesizer := newTestServer(t, nil)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/assistant", map[string]any{
		"action": "generatePlan",
		"data": map[string]any{
			"businessName": "Acme",
			"industry":     "Retail",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, synthesizer.calls)

	var resp planResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Plan)
	assert.Contains(t, resp.Plan.ExecutiveSummary, "Acme")
	assert.Contains(t, resp.Plan.ExecutiveSummary, "Retail")
	assert.NotEmpty(t, resp.Plan.QuickWins)
	assert.Equal(t, plan.SourceFallback, resp.Plan.Source)
}

func TestAssistantGeneratePlanNilData(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/assistant", map[string]any{
		"action": "generatePlan",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp planResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Plan)
	assert.Contains(t, resp.Plan.ExecutiveSummary, "your business")
}

func TestAssistantMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
	// Parse detail never reaches the client.
	assert.NotContains(t, rec.Body.String(), "json")
}

func TestAssistantUnknownAction(t *testing.T) {
	srv, synthesizer := newTestServer(t, nil)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/assistant", map[string]any{
		"action": "dropTables",
		"data":   map[string]any{},
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, synthesizer.calls)
	assert.NotContains(t, rec.Body.String(), "dropTables")
}

func TestAssistantGetMissingID(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/assistant", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestAssistantGetUnknownID(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/assistant?id=nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "plan not found")
}

func TestAssistantGetStoredPlan(t *testing.T) {
	store := plan.NewMemoryStore()
	srv := NewServer(Deps{
		Synthesizer: &fallbackSynth{},
		Store:       store,
		Probes:      health.NewProbeManager("test"),
		Logger:      log.New(log.DefaultConfig()),
	}, Config{Address: ":0"})

	id, err := store.Save(plan.Fallback("Acme", "Retail"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/assistant?id="+id, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp planResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Plan)
	assert.Contains(t, resp.Plan.ExecutiveSummary, "Acme")
}

func TestAssistantMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodDelete, "/api/assistant", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRelaySuccess(t *testing.T) {
	relay := &stubCompleter{content: "Focus on retention first."}
	srv, _ := newTestServer(t, relay)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/relay", map[string]string{
		"prompt": "What should I prioritize?",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "What should I prioritize?", relay.prompt)

	var resp relaySuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Focus on retention first.", resp.Content)
}

func TestRelayCompleterFailure(t *testing.T) {
	relay := &stubCompleter{err: fmt.Errorf("provider unavailable")}
	srv, _ := newTestServer(t, relay)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/relay", map[string]string{"prompt": "hi"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp relayFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "Failed to generate response", resp.Error)
}

func TestRelayWithoutCredential(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/relay", map[string]string{"prompt": "hi"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp relayFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Fallback)
}

func TestRelayEmptyPrompt(t *testing.T) {
	relay := &stubCompleter{content: "unused"}
	srv, _ := newTestServer(t, relay)
	handler := srv.Handler()

	rec := postJSON(t, handler, "/api/relay", map[string]string{"prompt": ""})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, relay.prompt)
}

func TestHealthProbes(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	srv.probes.MarkInitialized()
	handler := srv.Handler()

	for _, path := range []string{"/health/live", "/health/ready", "/health/startup", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestReadinessFailsDuringShutdown(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	srv.probes.MarkInitialized()
	srv.probes.MarkShutdown()
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
