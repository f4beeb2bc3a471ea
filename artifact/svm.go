package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

const (
	KernelLinear = "linear"
	KernelRBF    = "rbf"
)

// SVM is a serialized support vector machine decision function. Linear models
// carry a weight vector; RBF models carry support vectors with dual
// coefficients. The label is 1 when the decision value is positive.
type SVM struct {
	Kernel         string      `json:"kernel"`
	Weights        []float64   `json:"weights,omitempty"`
	Bias           float64     `json:"bias"`
	Gamma          float64     `json:"gamma,omitempty"`
	SupportVectors [][]float64 `json:"support_vectors,omitempty"`
	Coefs          []float64   `json:"coefs,omitempty"`
}

func LoadSVM(path string) (*SVM, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var model SVM
	if err := json.Unmarshal(payload, &model); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	return &model, nil
}

func (m *SVM) Save(path string) error {
	if err := m.validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (m *SVM) Predict(features []float64) (int, float64, error) {
	margin, err := m.decision(features)
	if err != nil {
		return 0, 0, err
	}
	if margin > 0 {
		return 1, margin, nil
	}
	return 0, margin, nil
}

func (m *SVM) decision(features []float64) (float64, error) {
	switch m.Kernel {
	case KernelLinear:
		if len(features) != len(m.Weights) {
			return 0, fmt.Errorf("expected %d features, got %d", len(m.Weights), len(features))
		}
		sum := m.Bias
		for i, w := range m.Weights {
			sum += w * features[i]
		}
		return sum, nil
	case KernelRBF:
		sum := m.Bias
		for i, sv := range m.SupportVectors {
			if len(features) != len(sv) {
				return 0, fmt.Errorf("expected %d features, got %d", len(sv), len(features))
			}
			dist := 0.0
			for j, value := range sv {
				diff := features[j] - value
				dist += diff * diff
			}
			sum += m.Coefs[i] * math.Exp(-m.Gamma*dist)
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("unsupported kernel %q", m.Kernel)
	}
}

func (m *SVM) validate() error {
	switch m.Kernel {
	case KernelLinear:
		if len(m.Weights) == 0 {
			return errors.New("linear model has no weights")
		}
	case KernelRBF:
		if len(m.SupportVectors) == 0 {
			return errors.New("rbf model has no support vectors")
		}
		if len(m.SupportVectors) != len(m.Coefs) {
			return errors.New("support vector/coef length mismatch")
		}
		if m.Gamma <= 0 {
			return errors.New("rbf model requires positive gamma")
		}
	default:
		return fmt.Errorf("unsupported kernel %q", m.Kernel)
	}
	return nil
}
