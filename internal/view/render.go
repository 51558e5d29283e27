package view

import (
	"html/template"

	"top-sales-tracker/internal/constants"
)

// TemplateName is the name the page template is registered under
const TemplateName = "tracker.html"

const pageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>
<h1 class="title">{{ .Title }}</h1>
<p class="message">{{ .Prompt }}</p>
{{ with .Page }}
<form class="inputContainer" method="post" action="{{ $.Action }}">
  <select name="network">{{ range .Networks }}<option value="{{ .Value }}"{{ if .Selected }} selected{{ end }}>{{ .Label }}</option>{{ end }}</select>
  <select name="timeframe">{{ range .Timeframes }}<option value="{{ .Value }}"{{ if .Selected }} selected{{ end }}>{{ .Label }}</option>{{ end }}</select>
  <select name="exclude_dex">{{ range .ExcludeDex }}<option value="{{ .Value }}"{{ if .Selected }} selected{{ end }}>{{ .Label }}</option>{{ end }}</select>
  <button type="submit"{{ if eq .Status "loading" }} disabled{{ end }}>Find Top Sales</button>
</form>
{{ if eq .Status "loading" }}<p class="message">{{ .Message }}</p>{{ end }}
{{ if eq .Status "error" }}<p class="errorMessage">{{ .Message }}</p>{{ end }}
{{ if eq .Status "empty" }}<p class="message">{{ .Message }}</p>{{ end }}
{{ if eq .Status "results" }}
<p class="topSale">Top Sale: {{ .TopSale }}</p>
<table class="tableContainer">
  <thead><tr><th>Number</th><th>Price USD</th><th>Price Native</th><th>Contract Address</th><th>Token ID</th><th>Block Timestamp</th></tr></thead>
  <tbody>
  {{ range .Rows }}<tr><td>{{ .Number }}</td><td>{{ .PriceUSD }}</td><td>{{ .PriceNative }}</td><td>{{ .ContractAddress }}</td><td>{{ .TokenID }}</td><td>{{ .BlockTimestamp }}</td></tr>
  {{ end }}</tbody>
</table>
{{ end }}
{{ end }}
</body>
</html>
`

var pageTmpl = template.Must(template.New(TemplateName).Parse(pageTemplate))

// Document is the data the page template is executed with
type Document struct {
	Title  string
	Prompt string
	Action string
	Page   Page
}

// NewDocument wraps a page for rendering. action is the form target that triggers a query.
func NewDocument(page Page, action string) Document {
	return Document{
		Title:  Title,
		Prompt: constants.MessagePrompt,
		Action: action,
		Page:   page,
	}
}

// Template returns the parsed page template
func Template() *template.Template {
	return pageTmpl
}
