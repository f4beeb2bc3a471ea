package schema

type Option struct {
	Label string `json:"label"`
	Code  int    `json:"code"`
}

type FieldDescriptor struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Help    string   `json:"help"`
	Options []Option `json:"options,omitempty"`
	Default string   `json:"default,omitempty"`
}

func (f FieldDescriptor) Categorical() bool {
	return len(f.Options) > 0
}

// Fields returns the input fields in feature-vector column order. The scaler
// and every model artifact were fit on this exact order; do not reorder.
func Fields() []FieldDescriptor {
	return []FieldDescriptor{
		{
			Key:     "age",
			Label:   "Age (years)",
			Help:    "Patient's age in years",
			Default: "50",
		},
		{
			Key:   "sex",
			Label: "Sex",
			Help:  "Select patient gender",
			Options: []Option{
				{Label: "Male", Code: 1},
				{Label: "Female", Code: 0},
			},
		},
		{
			Key:   "chest pain type",
			Label: "Chest Pain Type",
			Help:  "Type of chest pain experienced",
			Options: []Option{
				{Label: "Typical angina", Code: 1},
				{Label: "Atypical angina", Code: 2},
				{Label: "Non-anginal pain", Code: 3},
				{Label: "Asymptomatic", Code: 4},
			},
		},
		{
			Key:     "resting bp s",
			Label:   "Resting BP (mm Hg)",
			Help:    "Blood pressure at rest (mm Hg)",
			Default: "120",
		},
		{
			Key:     "cholesterol",
			Label:   "Cholesterol (mg/dl)",
			Help:    "Serum cholesterol level",
			Default: "200",
		},
		{
			Key:   "fasting blood sugar",
			Label: "Fasting Blood Sugar >120mg/dl",
			Help:  "Is fasting blood sugar above 120 mg/dl?",
			Options: []Option{
				{Label: "Yes", Code: 1},
				{Label: "No", Code: 0},
			},
		},
		{
			Key:   "resting ecg",
			Label: "Resting ECG",
			Help:  "ECG measurement results",
			Options: []Option{
				{Label: "normal", Code: 0},
				{Label: "ST-T abnormality", Code: 1},
				{Label: "Left ventricular hypertrophy", Code: 2},
			},
		},
		{
			Key:     "max heart rate",
			Label:   "Max Heart Rate",
			Help:    "Maximum heart rate achieved",
			Default: "150",
		},
		{
			Key:   "exercise angina",
			Label: "Exercise Angina",
			Help:  "Does exercise cause angina?",
			Options: []Option{
				{Label: "Yes", Code: 1},
				{Label: "No", Code: 0},
			},
		},
		{
			Key:     "oldpeak",
			Label:   "Oldpeak",
			Help:    "ST depression induced by exercise",
			Default: "1.0",
		},
		{
			Key:   "ST slope",
			Label: "ST Slope",
			Help:  "The slope of the peak exercise ST segment",
			Options: []Option{
				{Label: "upsloping", Code: 1},
				{Label: "flat", Code: 2},
				{Label: "downsloping", Code: 3},
			},
		},
	}
}

func FieldKeys() []string {
	fields := Fields()
	keys := make([]string, len(fields))
	for i, field := range fields {
		keys[i] = field.Key
	}
	return keys
}
