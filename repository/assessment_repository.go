package repository

import "credit-risk-form/domain"

type AssessmentRepository interface {
	Save(a domain.RiskAssessment) error
}
