// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Performance Results</title>
<style>
table.summary { border-collapse: collapse; margin-bottom: 2em; }
table.summary td, table.summary th { border: 1px solid #ccc; padding: 4px 8px; text-align: center; }
tr.header { background: #4CAF50; color: white; font-weight: bold; }
tr.average { background: #E3F2FD; font-weight: bold; }
</style>
</head>
<body>
{{- range .}}
<h2>Performance Results: {{.Title}}</h2>
<table class="summary">
{{- range .Rows}}
<tr class="{{.Kind}}">{{if eq .Kind.String "header"}}{{range .Cells}}<th>{{.}}{{end}}{{else}}{{range .Cells}}<td>{{.}}{{end}}{{end}}
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

// FormatHTML writes an HTML document holding tables to w.
func FormatHTML(w io.Writer, tables []*Table) error {
	return htmlTemplate.Execute(w, tables)
}
