package predict

import (
	"fmt"

	"cardioscreen/artifact"
)

type ErrorKind string

const (
	UnknownModel    ErrorKind = "unknown_model"
	ArtifactFailure ErrorKind = "artifact_failure"
)

type PredictionError struct {
	Kind ErrorKind
	Tag  string
	Err  error
}

func (e *PredictionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Kind, e.Tag)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// Predictor dispatches encoded feature vectors to a loaded model. It holds no
// mutable state: given the same input, tag and artifacts, Predict always
// returns the same label.
type Predictor struct {
	scaler artifact.Transformer
	models map[string]artifact.Model
}

func New(scaler artifact.Transformer, models map[string]artifact.Model) *Predictor {
	return &Predictor{scaler: scaler, models: models}
}

func FromRegistry(registry *artifact.Registry) *Predictor {
	models := make(map[string]artifact.Model)
	for _, tag := range registry.Tags() {
		if model, ok := registry.Model(tag); ok {
			models[tag] = model
		}
	}
	return New(registry.Scaler(), models)
}

// Predict normalizes features through the scaler and invokes the model behind
// tag. The model lookup happens first: an unknown tag never touches the
// scaler. The returned label is always 0 or 1.
func (p *Predictor) Predict(features []float64, tag string) (int, float64, error) {
	model, ok := p.models[tag]
	if !ok {
		return 0, 0, &PredictionError{Kind: UnknownModel, Tag: tag}
	}

	normalized, err := p.scaler.Transform(features)
	if err != nil {
		return 0, 0, &PredictionError{Kind: ArtifactFailure, Tag: tag, Err: err}
	}

	label, margin, err := model.Predict(normalized)
	if err != nil {
		return 0, 0, &PredictionError{Kind: ArtifactFailure, Tag: tag, Err: err}
	}
	if label != 0 && label != 1 {
		return 0, 0, &PredictionError{
			Kind: ArtifactFailure,
			Tag:  tag,
			Err:  fmt.Errorf("model returned label %d, want 0 or 1", label),
		}
	}
	return label, margin, nil
}
