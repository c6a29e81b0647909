package service

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"credit-risk-form/domain"
	"credit-risk-form/model"
	"credit-risk-form/repository"
)

type RiskService struct {
	clf   model.Classifier
	repo  repository.AssessmentRepository
	cache repository.SessionCache
	log   *zap.SugaredLogger
}

// NewRiskService creates a new RiskService with the given classifier,
// repository and session cache.
func NewRiskService(
	clf model.Classifier,
	repo repository.AssessmentRepository,
	cache repository.SessionCache,
	log *zap.SugaredLogger,
) *RiskService {
	return &RiskService{clf: clf, repo: repo, cache: cache, log: log}
}

// Assess validates the form input, scores it through the classifier and
// records the result as the session's latest assessment.
func (s *RiskService) Assess(
	sessionID string,
	in domain.ApplicantInput,
) (domain.RiskAssessment, error) {

	if in.MonthlyIncome < MinMonthlyIncome || in.MonthlyIncome > MaxMonthlyIncome {
		return domain.RiskAssessment{}, fmt.Errorf(
			"monthly income must be between %.0f and %.0f", MinMonthlyIncome, MaxMonthlyIncome)
	}
	if in.LoanAmount < MinLoanAmount || in.LoanAmount > MaxLoanAmount {
		return domain.RiskAssessment{}, fmt.Errorf(
			"loan amount must be between %.0f and %.0f", MinLoanAmount, MaxLoanAmount)
	}
	if in.TermMonths < MinTermMonths || in.TermMonths > MaxTermMonths {
		return domain.RiskAssessment{}, fmt.Errorf(
			"term must be between %d and %d months", MinTermMonths, MaxTermMonths)
	}

	p := s.clf.PredictProba(in)

	a := domain.RiskAssessment{
		MonthlyIncome: in.MonthlyIncome,
		LoanAmount:    in.LoanAmount,
		TermMonths:    in.TermMonths,
		Probability:   p,
		RiskBand:      domain.BandFor(p),
	}

	// Record keeping is best effort, the assessment is still returned.
	if err := s.repo.Save(a); err != nil {
		s.log.Warnw("failed to save assessment", "error", err)
	}

	raw, err := json.Marshal(a)
	if err != nil {
		return domain.RiskAssessment{}, fmt.Errorf("encode assessment: %w", err)
	}
	if err := s.cache.Set(sessionKey(sessionID), string(raw)); err != nil {
		s.log.Warnw("failed to cache assessment", "session", sessionID, "error", err)
	}

	return a, nil
}

// Last returns the session's most recent assessment, if any.
func (s *RiskService) Last(sessionID string) (domain.RiskAssessment, bool) {
	raw, ok := s.cache.Get(sessionKey(sessionID))
	if !ok {
		return domain.RiskAssessment{}, false
	}
	var a domain.RiskAssessment
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		s.log.Warnw("dropping corrupt cached assessment", "session", sessionID, "error", err)
		return domain.RiskAssessment{}, false
	}
	return a, true
}

func sessionKey(sessionID string) string {
	return "assessment:" + sessionID
}
