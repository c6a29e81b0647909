package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"credit-risk-form/domain"
	"credit-risk-form/mail"
)

var (
	// ErrNoAssessment means the session has not computed a risk yet.
	ErrNoAssessment = errors.New("no risk assessment computed for this session")
	// ErrEmptyEmail means the recipient address was blank.
	ErrEmptyEmail = errors.New("a valid email address is required")
	// ErrHighRisk blocks confirmations for the highest risk band.
	ErrHighRisk = errors.New("email confirmation is not sent for High risk cases")
)

type NotifyService struct {
	risk   *RiskService
	sender mail.Sender
	log    *zap.SugaredLogger
}

// NewNotifyService creates a NotifyService sending through the given sender.
func NewNotifyService(risk *RiskService, sender mail.Sender, log *zap.SugaredLogger) *NotifyService {
	return &NotifyService{risk: risk, sender: sender, log: log}
}

// SendConfirmation mails the session's latest assessment to the given
// address. It returns an 8-character reference ID that identifies the
// attempt in the mail subject and in error reports.
func (s *NotifyService) SendConfirmation(sessionID, email string) (string, error) {
	last, ok := s.risk.Last(sessionID)
	if !ok {
		return "", ErrNoAssessment
	}
	if strings.TrimSpace(email) == "" {
		return "", ErrEmptyEmail
	}
	if last.RiskBand == domain.BandHigh {
		return "", ErrHighRisk
	}

	ref := uuid.NewString()[:8]
	subject := fmt.Sprintf("Credit form confirmation (ref %s)", ref)

	if err := s.sender.Send(email, subject, confirmationBody(last, ref)); err != nil {
		s.log.Errorw("confirmation mail failed", "ref", ref, "error", err)
		return ref, err
	}

	s.log.Infow("confirmation mail sent", "ref", ref)
	return ref, nil
}

func confirmationBody(a domain.RiskAssessment, ref string) string {
	var b strings.Builder
	b.WriteString("Thank you for using the credit risk simulator!\n\n")
	b.WriteString("Details of your simulation:\n")
	fmt.Fprintf(&b, "- Monthly income: %.2f\n", a.MonthlyIncome)
	fmt.Fprintf(&b, "- Loan amount: %.2f\n", a.LoanAmount)
	fmt.Fprintf(&b, "- Term: %d months\n\n", a.TermMonths)
	b.WriteString("Model result:\n")
	fmt.Fprintf(&b, "- Estimated default probability: %.1f%%\n", a.Probability*100)
	fmt.Fprintf(&b, "- Risk band: %s\n\n", a.RiskBand)
	fmt.Fprintf(&b, "Reference ID: %s\n", ref)
	return b.String()
}
