// Render HTML for viewing a stored run

package render

import (
	"html/template"
	"io"

	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/model"
	"go.uber.org/zap"
)

var run_page_template *template.Template

// init initializes the templates used for rendering the run page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>CGC run: {{ .Run.RunID }}</title>
	</head>
	<body>
		<h1>CGC run: {{ .Run.RunID }}</h1>
		{{template "run_summary" . }}
		{{ range .Clusters }}
			{{template "cluster_info" . }}
		{{ else }}
			<p>No clusters.</p>
		{{ end }}
	</body>
	</html>`

	runSummaryTmpl := `
	  {{define "run_summary"}}
		<div>
			<p>Input: {{ .Run.Input }}</p>
			<p>Signature genes: {{ .Run.Mode }}, distance {{ .Run.Distance }} genes, base pair limit {{ .Run.BasePair }} bp.</p>
			<p>{{ .Run.Contigs }} contigs, {{ .Run.Genes }} genes scanned. {{ .Run.Clusters }} clusters found, {{ .Run.Filtered }} passed the base pair filter.</p>
			{{ if .FilteredOnly }}<p>Showing filtered clusters only.</p>{{ end }}
		</div>
	  {{end}}
	`

	clusterInfoTmpl := `
	{{define "cluster_info"}}
		<h2>{{ .ContigID }} {{ .Label }}</h2>
		<p>{{ len .Genes }} genes, {{ .StartBP }}-{{ .EndBP }} ({{ geneLength .EndBP .StartBP }} bp).
		CAZyme {{ .Composition.CAZyme }}, TC {{ .Composition.TC }}, TF {{ .Composition.TF }}, STP {{ .Composition.STP }}.</p>
		<table border="1">
		<tr>
			<th>Index</th>
			<th>Category</th>
			<th>Feature ID</th>
			<th>Start</th>
			<th>End</th>
			<th>Length (bp)</th>
			<th>Strand</th>
			<th>Attributes</th>
		</tr>
		{{ range .Genes }}
			{{ if .Important }}
			<tr style="background-color: #d9f2e6; color: #333333">
			{{ else }}
			<tr style="background-color: #f2f2f2; color: #777777">
			{{ end }}
				<td>{{ .ContigIndex }}</td>
				<td>{{ .Record.Label }}</td>
				<td>{{ .Record.FeatureID }}</td>
				<td>{{ .Record.Start }}</td>
				<td>{{ .Record.End }}</td>
				<td>{{ geneLength .Record.End .Record.Start }}</td>
				<td>{{ .Record.Strand }}</td>
				<td>{{ .Record.Attributes }}</td>
			</tr>
		{{ end }}
		</table>
	{{end}}`

	run_page_template = template.New("run_page")

	funcMap := template.FuncMap{
		"geneLength": func(end, start int) int {
			if end < start {
				return start - end + 1
			}
			return end - start + 1
		},
	}

	run_page_template = run_page_template.Funcs(funcMap)
	run_page_template = template.Must(run_page_template.Parse(mainTmpl))
	run_page_template = template.Must(run_page_template.Parse(runSummaryTmpl))
	run_page_template = template.Must(run_page_template.Parse(clusterInfoTmpl))
}

// RenderRunPage renders a run and its clusters as an HTML page.
func RenderRunPage(w io.Writer, run *model.Run, clusters []model.Cluster, filteredOnly bool) error {

	logger.Info("Rendering run page on", zap.String("run-id", run.RunID))

	data := struct {
		Run          *model.Run
		Clusters     []model.Cluster
		FilteredOnly bool
	}{
		Run:          run,
		Clusters:     clusters,
		FilteredOnly: filteredOnly,
	}

	return run_page_template.Execute(w, data)
}
