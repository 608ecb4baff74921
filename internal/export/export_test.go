package export

import (
	"strings"
	"testing"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/render"
	"convite-premium-backend/internal/sections"
)

func testExporter() *Exporter {
	composer := render.NewComposer(sections.DefaultRegistry(), nil, nil)
	return NewExporter(composer)
}

func sampleLayout() *models.EventLayout {
	return &models.EventLayout{
		ID:       "layout-1",
		Name:     "Casamento Ana & Pedro",
		Language: "pt-BR",
		MusicURL: "https://cdn.example.com/valsa.mp3",
		Sections: []models.Section{
			{ID: "s1", Type: models.SplashSection, Content: models.ContentMap{"title": "Você é nosso convidado"}},
			{ID: "s2", Type: models.HeroSection, Content: models.ContentMap{"title": "Ana & Pedro"}},
			{ID: "s3", Type: models.AgendaSection},
		},
	}
}

func TestExport_SelfContainedDocument(t *testing.T) {
	result, err := testExporter().Export(sampleLayout(), nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	html := string(result.Data)
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="pt-BR">`,
		"<title>Casamento Ana &amp; Pedro</title>",
		"Ana &amp; Pedro",
		`id="convite-layout"`,
		"</html>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected document to contain %q", want)
		}
	}

	if result.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", result.ContentType)
	}
}

func TestExport_GateIsPreOpened(t *testing.T) {
	result, err := testExporter().Export(sampleLayout(), nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	html := string(result.Data)
	// The splash leaves the flow when the reveal has happened, and gated
	// extras like background music are present. The splash text still
	// appears inside the embedded layout JSON, so assert on the rendered
	// markup instead.
	if strings.Contains(html, "__splash") {
		t.Fatal("expected the splash screen omitted from the export")
	}
	if !strings.Contains(html, "convite__music") {
		t.Fatal("expected background music in the exported document")
	}
}

func TestExport_EmbedsLayoutJSON(t *testing.T) {
	result, err := testExporter().Export(sampleLayout(), nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !strings.Contains(string(result.Data), `"layout-1"`) {
		t.Fatal("expected embedded layout JSON with the layout id")
	}
}

func TestExport_ExternalOverlayApplies(t *testing.T) {
	layout := sampleLayout()
	layout.Sections = append(layout.Sections, models.Section{ID: "rsvp-1", Type: models.RSVPSection})

	external := models.NewExternalInputState()
	external.SetValue("rsvp-1", "name", "Maria Silva")

	result, err := testExporter().Export(layout, external)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(string(result.Data), "Maria Silva") {
		t.Fatal("expected the external value prefilled in the exported form")
	}
}

func TestExport_NilLayout(t *testing.T) {
	if _, err := testExporter().Export(nil, nil); err == nil {
		t.Fatal("expected error for nil layout")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Casamento Ana & Pedro": "casamento-ana--pedro.html",
		"               ":       "convite.html",
		"José/../../etc":        "joséetc.html",
	}
	for title, want := range cases {
		result, err := testExporter().Export(&models.EventLayout{ID: "x", Name: title}, nil)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		if result.Filename != want {
			t.Fatalf("title %q: expected filename %q, got %q", title, want, result.Filename)
		}
	}
}
