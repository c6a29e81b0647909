package repository

import (
	"sync"

	"credit-risk-form/domain"
)

// AssessmentRepositoryMemory is an in-memory implementation of
// AssessmentRepository. Records live only for the process lifetime.
type AssessmentRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.RiskAssessment
}

// NewAssessmentRepositoryMemory creates a new in-memory assessment repository.
func NewAssessmentRepositoryMemory() *AssessmentRepositoryMemory {
	return &AssessmentRepositoryMemory{
		data: []domain.RiskAssessment{},
	}
}

// Save appends the assessment to the in-memory log.
func (r *AssessmentRepositoryMemory) Save(a domain.RiskAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, a)
	return nil
}

// Len reports how many assessments have been recorded.
func (r *AssessmentRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
