package domain

// ApplicantInput holds the three form fields the user submits.
type ApplicantInput struct {
	MonthlyIncome float64 `json:"monthly_income"`
	LoanAmount    float64 `json:"loan_amount"`
	TermMonths    int     `json:"term_months"`
}

// RiskAssessment is the result of scoring one submission. It lives only
// for the duration of a session and is overwritten on each recomputation.
type RiskAssessment struct {
	MonthlyIncome float64 `json:"monthly_income"`
	LoanAmount    float64 `json:"loan_amount"`
	TermMonths    int     `json:"term_months"`
	Probability   float64 `json:"probability"`
	RiskBand      string  `json:"risk_band"`
}
