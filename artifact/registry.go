package artifact

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cardioscreen/logger"
)

var ErrNoModels = errors.New("no model artifacts could be loaded")

// Registry holds the scaler and every model that loaded successfully. It is
// populated once at startup and read-only afterwards, so it is safe to share
// across requests without locking.
type Registry struct {
	scaler *Scaler
	models map[string]Model
	tags   []string
}

func ScalerPath(dir string) string {
	return filepath.Join(dir, "scaler.json")
}

func ModelPath(dir, tag string) string {
	return filepath.Join(dir, "models", strings.ToLower(tag)+"_svm_model.json")
}

// LoadRegistry loads the scaler and the fixed model set from dir. A missing or
// corrupt scaler is fatal. Each model is attempted independently: failures are
// logged as warnings and the tag is left out. Zero loaded models is fatal.
func LoadRegistry(dir string) (*Registry, error) {
	scaler, err := LoadScaler(ScalerPath(dir))
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	models := make(map[string]Model)
	tags := make([]string, 0, len(ModelTags()))
	for _, tag := range ModelTags() {
		path := ModelPath(dir, tag)
		model, err := LoadSVM(path)
		if err != nil {
			logger.S().Warnw("model artifact unavailable, tag disabled",
				"tag", tag, "path", path, "error", err)
			continue
		}
		models[tag] = model
		tags = append(tags, tag)
	}

	if len(models) == 0 {
		return nil, ErrNoModels
	}

	return &Registry{scaler: scaler, models: models, tags: tags}, nil
}

// Tags returns the loaded model tags in display order.
func (r *Registry) Tags() []string {
	return append([]string(nil), r.tags...)
}

func (r *Registry) Model(tag string) (Model, bool) {
	model, ok := r.models[tag]
	return model, ok
}

func (r *Registry) Scaler() Transformer {
	return r.scaler
}

func (r *Registry) Description(tag string) (string, bool) {
	if _, ok := r.models[tag]; !ok {
		return "", false
	}
	description, ok := ModelDescriptions()[tag]
	return description, ok
}
