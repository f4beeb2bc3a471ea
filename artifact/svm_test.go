package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLinearPredict(t *testing.T) {
	model := &SVM{Kernel: KernelLinear, Weights: []float64{1, -1}, Bias: 0}

	label, margin, err := model.Predict([]float64{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 || margin <= 0 {
		t.Fatalf("expected positive class, got label=%d margin=%v", label, margin)
	}

	label, margin, err = model.Predict([]float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 || margin > 0 {
		t.Fatalf("expected negative class, got label=%d margin=%v", label, margin)
	}
}

func TestRBFPredict(t *testing.T) {
	model := &SVM{
		Kernel:         KernelRBF,
		Gamma:          1,
		SupportVectors: [][]float64{{0, 0}, {4, 4}},
		Coefs:          []float64{1, -1},
		Bias:           0,
	}

	label, _, err := model.Predict([]float64{0.1, 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 {
		t.Fatalf("expected label 1 near positive support vector, got %d", label)
	}

	label, _, err = model.Predict([]float64{3.9, 3.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 {
		t.Fatalf("expected label 0 near negative support vector, got %d", label)
	}
}

func TestPredictDimensionMismatch(t *testing.T) {
	model := &SVM{Kernel: KernelLinear, Weights: []float64{1, 1}, Bias: 0}
	if _, _, err := model.Predict([]float64{1}); err == nil {
		t.Fatal("expected error for dimension mismatch")
	}
}

func TestSVMSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	model := &SVM{Kernel: KernelLinear, Weights: []float64{0.5, -0.5}, Bias: 0.1}
	if err := model.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadSVM(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Kernel != KernelLinear || len(loaded.Weights) != 2 || loaded.Bias != 0.1 {
		t.Fatalf("unexpected loaded model: %+v", loaded)
	}
}

func TestLoadSVMCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSVM(path); err == nil {
		t.Fatal("expected error for corrupt model")
	}
}

func TestLoadSVMUnsupportedKernel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"kernel":"poly","weights":[1]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSVM(path); err == nil {
		t.Fatal("expected error for unsupported kernel")
	}
}
