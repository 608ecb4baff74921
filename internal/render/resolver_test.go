package render

import (
	"reflect"
	"testing"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/sections"
)

func TestDeviceForWidth(t *testing.T) {
	cases := []struct {
		width float64
		want  models.DeviceType
	}{
		{500, models.DeviceMobile},
		{639, models.DeviceMobile},
		{640, models.DeviceTablet},
		{800, models.DeviceTablet},
		{1023, models.DeviceTablet},
		{1024, models.DeviceDesktop},
		{1200, models.DeviceDesktop},
	}
	for _, tc := range cases {
		if got := DeviceForWidth(tc.width); got != tc.want {
			t.Fatalf("width %v: expected %s, got %s", tc.width, tc.want, got)
		}
	}
}

func TestResolveStyle_DesktopIgnoresResponsiveOverrides(t *testing.T) {
	node := models.EditorNode{
		Styles: models.StyleMap{"color": "red", "fontSize": 16},
		ResponsiveStyles: map[models.DeviceType]models.StyleMap{
			models.DeviceMobile: {"color": "blue"},
		},
	}

	resolved := ResolveStyle(node, models.DeviceDesktop)
	if !reflect.DeepEqual(resolved, models.StyleMap{"color": "red", "fontSize": 16}) {
		t.Fatalf("expected base styles exactly, got %v", resolved)
	}
}

func TestResolveStyle_MobileOverlaysDelta(t *testing.T) {
	node := models.EditorNode{
		Styles: models.StyleMap{"color": "red", "fontSize": 16},
		ResponsiveStyles: map[models.DeviceType]models.StyleMap{
			models.DeviceMobile: {"color": "blue"},
		},
	}

	resolved := ResolveStyle(node, models.DeviceMobile)
	if resolved["color"] != "blue" {
		t.Fatalf("expected mobile color override, got %v", resolved["color"])
	}
	if resolved["fontSize"] != 16 {
		t.Fatalf("expected base fontSize preserved, got %v", resolved["fontSize"])
	}
}

func TestResolveStyle_DoesNotMutateNode(t *testing.T) {
	node := models.EditorNode{
		Styles: models.StyleMap{"color": "red"},
		ResponsiveStyles: map[models.DeviceType]models.StyleMap{
			models.DeviceTablet: {"color": "green"},
		},
	}

	_ = ResolveStyle(node, models.DeviceTablet)
	if node.Styles["color"] != "red" {
		t.Fatalf("base styles were mutated: %v", node.Styles["color"])
	}
}

func TestResolveContent_EmptySectionYieldsTemplateDefaults(t *testing.T) {
	def, _ := sections.Template(models.HeroSection)
	section := models.Section{Type: models.HeroSection, Content: models.ContentMap{}}

	resolved := ResolveContent(section, def, nil)
	if !reflect.DeepEqual(map[string]interface{}(resolved), map[string]interface{}(def.DefaultData)) {
		t.Fatalf("expected exactly the template defaults, got %v", resolved)
	}
}

func TestResolveContent_ExternalOverridesSingleKey(t *testing.T) {
	def, _ := sections.Template(models.HeroSection)
	section := models.Section{
		Type:    models.HeroSection,
		Content: models.ContentMap{"title": "Ana & Bruno", "location": "Praia"},
	}

	resolved := ResolveContent(section, def, map[string]interface{}{"title": "Externo"})
	if resolved["title"] != "Externo" {
		t.Fatalf("expected external value to win, got %v", resolved["title"])
	}
	if resolved["location"] != "Praia" {
		t.Fatalf("expected section content for untouched key, got %v", resolved["location"])
	}
	if resolved["subtitle"] != def.DefaultData["subtitle"] {
		t.Fatalf("expected template default for absent key, got %v", resolved["subtitle"])
	}
}

func TestResolveSectionStyle_DeviceDelta(t *testing.T) {
	section := models.Section{
		Styles: models.StyleMap{
			"padding": "32px",
			"mobile":  map[string]interface{}{"padding": "12px"},
		},
	}

	desktop := ResolveSectionStyle(section, models.DeviceDesktop)
	if desktop["padding"] != "32px" {
		t.Fatalf("expected desktop base padding, got %v", desktop["padding"])
	}
	if _, leaked := desktop["mobile"]; leaked {
		t.Fatalf("device delta keys must not leak into resolved styles")
	}

	mobile := ResolveSectionStyle(section, models.DeviceMobile)
	if mobile["padding"] != "12px" {
		t.Fatalf("expected mobile padding override, got %v", mobile["padding"])
	}
}
