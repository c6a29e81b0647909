package service

// Form input bounds. Submissions outside these ranges are rejected
// before the model is consulted.
const (
	MinMonthlyIncome = 1000.0
	MaxMonthlyIncome = 8000.0
	MinLoanAmount    = 2000.0
	MaxLoanAmount    = 10000.0
	MinTermMonths    = 6
	MaxTermMonths    = 36
)
