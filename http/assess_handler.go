package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"credit-risk-form/domain"
	"credit-risk-form/service"
)

type AssessHandler struct {
	service *service.RiskService
	log     *zap.SugaredLogger
}

func NewAssessHandler(service *service.RiskService, log *zap.SugaredLogger) *AssessHandler {
	return &AssessHandler{service: service, log: log}
}

// AssessResponse echoes the inputs together with the model result.
type AssessResponse struct {
	MonthlyIncome  float64 `json:"monthly_income"`
	LoanAmount     float64 `json:"loan_amount"`
	TermMonths     int     `json:"term_months"`
	Probability    float64 `json:"probability"`
	ProbabilityPct string  `json:"probability_pct"`
	RiskBand       string  `json:"risk_band"`
}

func (h *AssessHandler) Assess(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.ApplicantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sid := sessionID(w, r)

	a, err := h.service.Assess(sid, input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AssessResponse{
		MonthlyIncome:  a.MonthlyIncome,
		LoanAmount:     a.LoanAmount,
		TermMonths:     a.TermMonths,
		Probability:    a.Probability,
		ProbabilityPct: fmt.Sprintf("%.1f%%", a.Probability*100),
		RiskBand:       a.RiskBand,
	})
}
