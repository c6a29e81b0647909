package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"credit-risk-form/domain"
)

// Classifier scores one applicant and returns the estimated default
// probability in [0, 1]. The model is an externally-trained artifact;
// this package only deserializes and evaluates it.
type Classifier interface {
	PredictProba(in domain.ApplicantInput) float64
}

// artifact is the on-disk schema (version 2): a standardized logistic
// regression with an ordered coefficient slice. Version 1 artifacts
// stored the coefficient block as a feature→weight map under "weights"
// and carried no standardization parameters; Load falls back to that
// layout when "coefficients" is absent.
type artifact struct {
	Version      int       `json:"version"`
	Features     []string  `json:"features"`
	Means        []float64 `json:"means"`
	Scales       []float64 `json:"scales"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`

	// legacy v1
	Weights map[string]float64 `json:"weights"`
}

// LogisticModel evaluates a standardized logistic regression.
type LogisticModel struct {
	features  []string
	means     []float64
	scales    []float64
	coefs     []float64
	intercept float64
}

// Load deserializes a model artifact from path.
func Load(path string) (*LogisticModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if len(a.Features) == 0 {
		return nil, fmt.Errorf("model artifact %s: no feature list", path)
	}

	if len(a.Coefficients) == 0 && len(a.Weights) > 0 {
		// Compatibility patch for v1 artifacts: rebuild the ordered
		// coefficient slice from the legacy weight map.
		coefs := make([]float64, len(a.Features))
		for i, name := range a.Features {
			w, ok := a.Weights[name]
			if !ok {
				return nil, fmt.Errorf("model artifact %s: legacy weights missing feature %q", path, name)
			}
			coefs[i] = w
		}
		a.Coefficients = coefs
	}

	if len(a.Coefficients) != len(a.Features) {
		return nil, fmt.Errorf("model artifact %s: %d coefficients for %d features",
			path, len(a.Coefficients), len(a.Features))
	}

	// v1 artifacts predate input standardization.
	if len(a.Means) == 0 {
		a.Means = make([]float64, len(a.Features))
	}
	if len(a.Scales) == 0 {
		a.Scales = make([]float64, len(a.Features))
		for i := range a.Scales {
			a.Scales[i] = 1
		}
	}
	if len(a.Means) != len(a.Features) || len(a.Scales) != len(a.Features) {
		return nil, fmt.Errorf("model artifact %s: standardization parameters do not match feature list", path)
	}

	return &LogisticModel{
		features:  a.Features,
		means:     a.Means,
		scales:    a.Scales,
		coefs:     a.Coefficients,
		intercept: a.Intercept,
	}, nil
}

// PredictProba evaluates the model for one applicant.
func (m *LogisticModel) PredictProba(in domain.ApplicantInput) float64 {
	z := m.intercept
	for i, name := range m.features {
		x := featureValue(in, name)
		if m.scales[i] != 0 {
			x = (x - m.means[i]) / m.scales[i]
		}
		z += m.coefs[i] * x
	}
	return 1 / (1 + math.Exp(-z))
}

func featureValue(in domain.ApplicantInput, name string) float64 {
	switch name {
	case "monthly_income":
		return in.MonthlyIncome
	case "loan_amount":
		return in.LoanAmount
	case "term_months":
		return float64(in.TermMonths)
	}
	return 0
}
