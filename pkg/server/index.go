package server

import (
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

const pageTitle = "polySpectra Materials Comparison"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
<style>
body { font-family: sans-serif; margin: 2em; }
.controls > div { width: 33%; display: inline-block; vertical-align: top; }
</style>
</head>
<body>
<h1>Properties Comparison of Additive Materials</h1>
{{if .Error}}
<p class="error">Materials could not be loaded: {{.Error}}</p>
{{else}}
<div class="controls">
  <div id="classes">
  {{range .Schema.Chooser}}<label><input type="checkbox" name="class" value="{{.}}" checked> {{.}}</label><br>
  {{end}}
  </div>
  <div><select id="x">{{range .Schema.Fields}}<option value="{{.Name}}"{{if eq .Name $.Schema.DefaultX}} selected{{end}}>{{.Label}}</option>{{end}}</select></div>
  <div><select id="y">{{range .Schema.Fields}}<option value="{{.Name}}"{{if eq .Name $.Schema.DefaultY}} selected{{end}}>{{.Label}}</option>{{end}}</select></div>
</div>
<div id="graph" style="height: 640px"></div>
<script>
function update() {
  var params = new URLSearchParams();
  params.set("x", document.getElementById("x").value);
  params.set("y", document.getElementById("y").value);
  var boxes = document.querySelectorAll("#classes input");
  var checked = Array.prototype.filter.call(boxes, function (b) { return b.checked; });
  if (checked.length === boxes.length) {
    params.set("mode", "all");
  } else {
    params.set("mode", "set");
    checked.forEach(function (b) { params.append("class", b.value); });
  }
  fetch("api/figure?" + params.toString())
    .then(function (r) { return r.json(); })
    .then(function (fig) { Plotly.react("graph", fig.data, fig.layout); });
}
document.querySelectorAll("select, #classes input").forEach(function (el) { el.addEventListener("change", update); });
update();
</script>
{{end}}
</body>
</html>
`))

type indexData struct {
	Title  string
	Error  string
	Schema schemaJSON
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{Title: pageTitle}
	status := http.StatusOK

	table, c, err := s.load(r.Context())
	if err == nil {
		data.Schema = s.schemaOf(table, c)
	} else {
		// Controls are not offered until the dataset is usable.
		data.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		logrus.Errorf("Cannot render index page: %v", err)
	}
}
