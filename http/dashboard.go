package http

import (
	"html/template"
	"net/http"

	"cardioscreen/logger"
	"cardioscreen/schema"
)

// RegisterDashboardRoutes 注册表单页面路由
func RegisterDashboardRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleDashboard)
}

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Fields []schema.FieldDescriptor
		Models []string
	}{
		Fields: schema.Fields(),
		Models: availableTags(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		logger.S().Warnw("failed to render dashboard", "error", err)
	}
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Heart Disease Risk Analyzer</title>
<style>
body { font-family: sans-serif; max-width: 680px; margin: 24px auto; padding: 0 12px; }
label { display: block; margin-top: 12px; font-weight: bold; }
input, select { width: 100%; padding: 6px; margin-top: 4px; box-sizing: border-box; }
small { color: #555; }
button { margin-top: 16px; padding: 8px 20px; }
#result { margin-top: 20px; padding: 14px; border: 1px solid #ccc; white-space: pre-line; }
#result.high { color: darkred; border-color: darkred; }
#result.low { color: darkgreen; border-color: darkgreen; }
</style>
</head>
<body>
<h1>Heart Disease Risk Analyzer</h1>
<p>This tool provides preliminary analysis only - consult a physician for diagnosis.</p>
<form id="assessment">
{{range .Fields}}
<label for="{{.Key}}">{{.Label}}</label>
{{if .Options}}
<select name="{{.Key}}" title="{{.Help}}">
{{range .Options}}<option value="{{.Label}}">{{.Label}}</option>{{end}}
</select>
{{else}}
<input name="{{.Key}}" value="{{.Default}}" title="{{.Help}}">
{{end}}
<small>{{.Help}}</small>
{{end}}
<label for="model">Prediction Model</label>
<select name="model" title="Select optimization algorithm used for prediction">
{{range .Models}}<option value="{{.}}">{{.}}</option>{{end}}
</select>
<button type="submit">Analyze Risk</button>
<button type="reset">Clear Fields</button>
</form>
<div id="result">Heart disease risk assessment results will be shown here</div>
<script>
document.getElementById('assessment').addEventListener('submit', async function (e) {
  e.preventDefault();
  const form = new FormData(e.target);
  const inputs = {};
  for (const [key, value] of form.entries()) {
    if (key !== 'model') inputs[key] = value;
  }
  const result = document.getElementById('result');
  result.className = '';
  const resp = await fetch('/api/predict', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({model: form.get('model'), inputs: inputs})
  });
  const body = await resp.json();
  if (!resp.ok) {
    result.textContent = 'Error: ' + body.error;
    return;
  }
  result.className = body.risk;
  result.textContent = 'Model: ' + body.model + '\n' + body.message;
});
</script>
</body>
</html>
`))
