package schema

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ReasonEmpty            = "empty"
	ReasonNotNumeric       = "not numeric"
	ReasonInvalidSelection = "invalid selection"
)

type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Encode validates raw form values against the field schema and produces the
// feature vector in schema column order. Validation stops at the first failing
// field; no value is encoded unless every field validates.
func Encode(raw map[string]string) ([]float64, error) {
	fields := Fields()

	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := encodeField(field, raw[field.Key])
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func encodeField(field FieldDescriptor, raw string) (float64, error) {
	if field.Categorical() {
		for _, option := range field.Options {
			if option.Label == raw {
				return float64(option.Code), nil
			}
		}
		return 0, &ValidationError{Field: field.Key, Reason: ReasonInvalidSelection}
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ValidationError{Field: field.Key, Reason: ReasonEmpty}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ValidationError{Field: field.Key, Reason: ReasonNotNumeric}
	}
	return value, nil
}
