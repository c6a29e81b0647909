package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"credit-risk-form/domain"
	"credit-risk-form/repository"
	"credit-risk-form/service"
)

type stubClassifier struct {
	p float64
}

func (s stubClassifier) PredictProba(in domain.ApplicantInput) float64 {
	return s.p
}

func newRiskService(p float64, cache repository.SessionCache) *service.RiskService {
	return service.NewRiskService(
		stubClassifier{p: p},
		repository.NewAssessmentRepositoryMemory(),
		cache,
		zap.NewNop().Sugar(),
	)
}

func TestAssessHandler_OK(t *testing.T) {

	handler := NewAssessHandler(newRiskService(0.35, repository.NewMemoryCache()), zap.NewNop().Sugar())

	body := []byte(`{
		"monthly_income": 4000,
		"loan_amount": 3000,
		"term_months": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/risk/assess",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.Assess(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out AssessResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.RiskBand != domain.BandMedium {
		t.Errorf("expected Medium band, got %q", out.RiskBand)
	}
	if out.ProbabilityPct != "35.0%" {
		t.Errorf("expected 35.0%%, got %q", out.ProbabilityPct)
	}

	var sessionSet bool
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie && c.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Errorf("expected a session cookie to be issued")
	}
}

func TestAssessHandler_MethodNotAllowed(t *testing.T) {

	handler := NewAssessHandler(newRiskService(0.1, repository.NewMemoryCache()), zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodGet, "/risk/assess", nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestAssessHandler_BadRequest(t *testing.T) {

	handler := NewAssessHandler(newRiskService(0.1, repository.NewMemoryCache()), zap.NewNop().Sugar())

	req := httptest.NewRequest(
		http.MethodPost,
		"/risk/assess",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.Assess(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAssessHandler_OutOfBounds(t *testing.T) {

	handler := NewAssessHandler(newRiskService(0.1, repository.NewMemoryCache()), zap.NewNop().Sugar())

	body := []byte(`{
		"monthly_income": 100,
		"loan_amount": 3000,
		"term_months": 12
	}`)

	req := httptest.NewRequest(http.MethodPost, "/risk/assess", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAssessHandler_ReusesSessionCookie(t *testing.T) {

	handler := NewAssessHandler(newRiskService(0.1, repository.NewMemoryCache()), zap.NewNop().Sugar())

	body := []byte(`{"monthly_income": 4000, "loan_amount": 3000, "term_months": 12}`)
	req := httptest.NewRequest(http.MethodPost, "/risk/assess", bytes.NewBuffer(body))
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "existing-session"})

	w := httptest.NewRecorder()
	handler.Assess(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			t.Errorf("no new session cookie should be issued, got %q", c.Value)
		}
	}
}
