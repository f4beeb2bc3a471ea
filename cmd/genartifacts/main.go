// genartifacts writes a demo scaler and model set into an artifact directory
// so the service can run without the externally-produced artifacts. The real
// deployment replaces these with the artifacts emitted by the training
// pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cardioscreen/artifact"
	"cardioscreen/schema"
)

func main() {
	dir := flag.String("dir", "./artifacts", "artifact output directory")
	flag.Parse()

	if err := os.MkdirAll(filepath.Join(*dir, "models"), 0o755); err != nil {
		log.Fatalf("failed to create artifact dir: %v", err)
	}

	columns := len(schema.Fields())

	scaler := &artifact.Scaler{
		Mean:  []float64{54, 0.7, 3.2, 131, 246, 0.15, 0.6, 149, 0.33, 1.0, 1.6},
		Scale: []float64{9.1, 0.46, 0.95, 17.6, 51.8, 0.36, 0.8, 22.9, 0.47, 1.1, 0.62},
	}
	if len(scaler.Mean) != columns {
		log.Fatalf("scaler has %d columns, schema has %d", len(scaler.Mean), columns)
	}
	if err := scaler.Save(artifact.ScalerPath(*dir)); err != nil {
		log.Fatalf("failed to save scaler: %v", err)
	}

	for i, tag := range artifact.ModelTags() {
		model := demoModel(columns, i)
		path := artifact.ModelPath(*dir, tag)
		if err := model.Save(path); err != nil {
			log.Fatalf("failed to save %s model: %v", tag, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	fmt.Printf("wrote %s\n", artifact.ScalerPath(*dir))
}

// demoModel builds a deterministic linear SVM whose weights differ per tag so
// the tags are distinguishable in manual testing.
func demoModel(columns, seed int) *artifact.SVM {
	weights := make([]float64, columns)
	for j := range weights {
		weights[j] = 0.1 + 0.05*float64((seed+j)%5)
	}
	// Oldpeak and ST slope push toward the positive class, max heart rate away.
	weights[7] = -0.4
	weights[9] = 0.6
	weights[10] = 0.5
	return &artifact.SVM{
		Kernel:  artifact.KernelLinear,
		Weights: weights,
		Bias:    -0.2,
	}
}
