package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Scaler applies the per-column affine normalization the models were fit with.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func LoadScaler(path string) (*Scaler, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler: %w", err)
	}
	var scaler Scaler
	if err := json.Unmarshal(payload, &scaler); err != nil {
		return nil, fmt.Errorf("decode scaler: %w", err)
	}
	if err := scaler.validate(); err != nil {
		return nil, fmt.Errorf("invalid scaler: %w", err)
	}
	return &scaler, nil
}

func (s *Scaler) Save(path string) error {
	if err := s.validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(features))
	}
	normalized := make([]float64, len(features))
	for i, value := range features {
		normalized[i] = (value - s.Mean[i]) / s.Scale[i]
	}
	return normalized, nil
}

func (s *Scaler) validate() error {
	if len(s.Mean) == 0 {
		return errors.New("mean is empty")
	}
	if len(s.Mean) != len(s.Scale) {
		return errors.New("mean/scale length mismatch")
	}
	for _, scale := range s.Scale {
		if scale == 0 {
			return errors.New("zero scale column")
		}
	}
	return nil
}
