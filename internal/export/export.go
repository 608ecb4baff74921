package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/render"
	"convite-premium-backend/internal/sections"
)

// Exporter serializes a layout into one self-contained HTML document: global
// styles inlined, sections rendered on the public surface with the splash
// already revealed, and the layout JSON embedded for host tooling.
type Exporter struct {
	composer *render.Composer
}

func NewExporter(composer *render.Composer) *Exporter {
	return &Exporter{composer: composer}
}

// Result is a finished export artifact.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

type documentData struct {
	Title      string
	Lang       string
	Body       template.HTML
	LayoutJSON template.JS
}

// Export renders the full document. The external overlay participates the
// same way it does on the live public surface.
func (e *Exporter) Export(layout *models.EventLayout, external *models.ExternalInputState) (*Result, error) {
	if layout == nil {
		return nil, fmt.Errorf("layout is required")
	}

	// A nil gate renders as already opened, so the exported document shows
	// the full invitation rather than the splash screen.
	body := e.composer.Compose(layout, render.ComposeOptions{
		Mode:     sections.ModePublic,
		Device:   models.DeviceDesktop,
		External: external,
	})

	layoutJSON, err := json.Marshal(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize layout: %w", err)
	}

	title := layout.Name
	if title == "" {
		title = "Convite"
	}

	var buf bytes.Buffer
	err = documentTemplate.Execute(&buf, documentData{
		Title:      title,
		Lang:       htmlLang(layout.Language),
		Body:       template.HTML(body),
		LayoutJSON: template.JS(layoutJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	return &Result{
		Filename:    sanitizeFilename(title) + ".html",
		ContentType: "text/html; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func htmlLang(language string) string {
	if language == "" {
		return "pt-BR"
	}
	return language
}

var filenameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9àáâãéêíóôõúç _-]+`)

func sanitizeFilename(title string) string {
	cleaned := filenameUnsafe.ReplaceAllString(title, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, " ", "-")
	if cleaned == "" {
		return "convite"
	}
	if len(cleaned) > 80 {
		cleaned = cleaned[:80]
	}
	return strings.ToLower(cleaned)
}

var documentTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { background: var(--background-color, #ffffff); }
    .convite { font-family: var(--font-body, serif); color: var(--primary-color, #4a4a4a); min-height: 100vh; }
    .convite h1, .convite h2, .convite h3 { font-family: var(--font-title, serif); }
    .convite--boxed { max-width: 720px; margin: 0 auto; border-radius: var(--container-radius, 0); overflow: hidden; }
    .convite__section { padding: 3rem 1.5rem; text-align: center; }
    .convite__section--hidden { display: none; }
    .convite__nav { position: sticky; bottom: 0; background: inherit; }
    .convite__nav--top { top: 0; bottom: auto; }
    .convite__music { display: none; }
  </style>
</head>
<body>
{{.Body}}
<script type="application/json" id="convite-layout">{{.LayoutJSON}}</script>
</body>
</html>
`))
