package artifact

// Model is a loaded binary classifier. Predict takes an already-normalized
// feature vector and returns the class label (0 or 1) together with the raw
// decision margin.
type Model interface {
	Predict(features []float64) (int, float64, error)
}

// Transformer normalizes an encoded feature vector into the domain the models
// were trained on.
type Transformer interface {
	Transform(features []float64) ([]float64, error)
}

// ModelTags lists the supported classifier tags in display order. Each tag
// names the offline optimization algorithm that tuned the SVM artifact.
func ModelTags() []string {
	return []string{"BFO", "ACO", "DE", "GA", "ABC"}
}

// ModelDescriptions maps each tag to a short human-readable description of the
// optimization algorithm behind it.
func ModelDescriptions() map[string]string {
	return map[string]string{
		"BFO": "Bacterial Foraging Optimization: inspired by bacterial behavior patterns, good for complex search spaces.",
		"ACO": "Ant Colony Optimization: inspired by ants' path-finding behavior, effective for combinatorial optimization.",
		"DE":  "Differential Evolution: evolutionary algorithm for global optimization, known for robustness and convergence.",
		"GA":  "Genetic Algorithm: biologically-inspired search heuristic that mimics natural selection.",
		"ABC": "Artificial Bee Colony: swarm intelligence algorithm simulating honey bees' foraging behavior.",
	}
}
