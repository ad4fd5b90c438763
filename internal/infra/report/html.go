// Package report renders the printable handover summary.
package report

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/ai"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
)

var ErrRenderFailed = errs.New("failed to render handover report")

type Handover struct {
	Day         time.Time
	Summary     string
	Boarders    int
	GeneratedAt time.Time
}

var pageTemplate = template.Must(template.New("handover").Funcs(template.FuncMap{
	"lines": summaryLines,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 2rem; color: #1f2937; line-height: 1.5; }
  h1 { font-size: 1.5rem; border-bottom: 2px solid #0f766e; padding-bottom: .5rem; }
  .meta { color: #6b7280; font-size: .85rem; margin-bottom: 1.5rem; }
  @media print { body { margin: 1cm; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Boarders}} animal(s) boarding. Generated {{.Generated}}.</p>
<div class="summary">{{range $i, $line := lines .Summary}}{{if $i}}<br>{{end}}{{$line}}{{end}}</div>
</body>
</html>
`))

type pageData struct {
	Title     string
	Summary   string
	Boarders  int
	Generated string
}

// Title is "Handover Summary for Monday, June 3, 2024".
func Title(day time.Time) string {
	return "Handover Summary for " + ai.LongDate(day)
}

// RenderHTML escapes the summary and turns its line breaks into <br>.
func RenderHTML(h Handover) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:     Title(h.Day),
		Summary:   h.Summary,
		Boarders:  h.Boarders,
		Generated: h.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "execute handover template"), ErrRenderFailed)
	}
	return buf.Bytes(), nil
}

func summaryLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
