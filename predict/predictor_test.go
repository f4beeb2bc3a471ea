package predict

import (
	"errors"
	"testing"

	"cardioscreen/artifact"
)

type countingTransformer struct {
	calls int
}

func (c *countingTransformer) Transform(features []float64) ([]float64, error) {
	c.calls++
	return features, nil
}

type fakeModel struct {
	label  int
	margin float64
	err    error
}

func (f *fakeModel) Predict(features []float64) (int, float64, error) {
	return f.label, f.margin, f.err
}

func TestPredictUnknownModelSkipsScaler(t *testing.T) {
	transformer := &countingTransformer{}
	predictor := New(transformer, map[string]artifact.Model{})

	_, _, err := predictor.Predict([]float64{1, 2}, "GA")
	if err == nil {
		t.Fatal("expected error")
	}
	var predictionErr *PredictionError
	if !errors.As(err, &predictionErr) {
		t.Fatalf("expected PredictionError, got %T", err)
	}
	if predictionErr.Kind != UnknownModel {
		t.Fatalf("expected UnknownModel, got %s", predictionErr.Kind)
	}
	if transformer.calls != 0 {
		t.Fatalf("scaler invoked %d times for unknown model", transformer.calls)
	}
}

func TestPredictDispatchesToSelectedModel(t *testing.T) {
	predictor := New(&countingTransformer{}, map[string]artifact.Model{
		"GA":  &fakeModel{label: 1, margin: 0.8},
		"ABC": &fakeModel{label: 0, margin: -0.3},
	})

	label, margin, err := predictor.Predict([]float64{1}, "GA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 || margin != 0.8 {
		t.Fatalf("unexpected result: label=%d margin=%v", label, margin)
	}

	label, _, err = predictor.Predict([]float64{1}, "ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 {
		t.Fatalf("expected label 0 from ABC, got %d", label)
	}
}

func TestPredictModelFailure(t *testing.T) {
	predictor := New(&countingTransformer{}, map[string]artifact.Model{
		"GA": &fakeModel{err: errors.New("boom")},
	})

	_, _, err := predictor.Predict([]float64{1}, "GA")
	var predictionErr *PredictionError
	if !errors.As(err, &predictionErr) || predictionErr.Kind != ArtifactFailure {
		t.Fatalf("expected ArtifactFailure, got %v", err)
	}
}

func TestPredictRejectsNonBinaryLabel(t *testing.T) {
	predictor := New(&countingTransformer{}, map[string]artifact.Model{
		"GA": &fakeModel{label: 2},
	})

	_, _, err := predictor.Predict([]float64{1}, "GA")
	var predictionErr *PredictionError
	if !errors.As(err, &predictionErr) || predictionErr.Kind != ArtifactFailure {
		t.Fatalf("expected ArtifactFailure for label 2, got %v", err)
	}
}

func TestPredictTransformFailure(t *testing.T) {
	scaler := &artifact.Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	predictor := New(scaler, map[string]artifact.Model{
		"GA": &fakeModel{label: 1},
	})

	_, _, err := predictor.Predict([]float64{1}, "GA")
	var predictionErr *PredictionError
	if !errors.As(err, &predictionErr) || predictionErr.Kind != ArtifactFailure {
		t.Fatalf("expected ArtifactFailure for dimension mismatch, got %v", err)
	}
}

func TestPredictIdempotent(t *testing.T) {
	scaler := &artifact.Scaler{
		Mean:  []float64{10, 0, 1},
		Scale: []float64{2, 1, 1},
	}
	model := &artifact.SVM{Kernel: artifact.KernelLinear, Weights: []float64{1, 0.5, -1}, Bias: 0.1}
	predictor := New(scaler, map[string]artifact.Model{"DE": model})

	features := []float64{14, 2, 3}
	firstLabel, firstMargin, err := predictor.Predict(features, "DE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		label, margin, err := predictor.Predict(features, "DE")
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
		if label != firstLabel || margin != firstMargin {
			t.Fatalf("call %d not idempotent: label=%d margin=%v", i, label, margin)
		}
	}
}
