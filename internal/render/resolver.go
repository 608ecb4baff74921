// Package render resolves effective styles and content and composes the
// editable and public HTML surfaces from the same section renderers, so the
// editor canvas and the published invitation cannot diverge.
package render

import (
	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/sections"
)

// Container width breakpoints for device classification.
const (
	MobileMaxWidth = 640
	TabletMaxWidth = 1024
)

// DeviceForWidth classifies a container width into a render device.
func DeviceForWidth(width float64) models.DeviceType {
	switch {
	case width < MobileMaxWidth:
		return models.DeviceMobile
	case width < TabletMaxWidth:
		return models.DeviceTablet
	default:
		return models.DeviceDesktop
	}
}

// ResolveStyle merges a node's base styles with the device-specific override
// delta. Desktop is the source of truth and always returns the base styles
// exactly; tablet and mobile overlay their deltas on top.
func ResolveStyle(node models.EditorNode, device models.DeviceType) models.StyleMap {
	resolved := models.StyleMap{}
	for key, value := range node.Styles {
		resolved[key] = value
	}

	if device == models.DeviceDesktop {
		return resolved
	}

	for key, value := range node.ResponsiveStyles[device] {
		resolved[key] = value
	}
	return resolved
}

// ResolveSectionStyle merges section base styles with a device delta held
// under the per-device keys of the section style map.
func ResolveSectionStyle(section models.Section, device models.DeviceType) models.StyleMap {
	resolved := models.StyleMap{}
	for key, value := range section.Styles {
		if key == string(models.DeviceTablet) || key == string(models.DeviceMobile) {
			continue
		}
		resolved[key] = value
	}

	if device == models.DeviceDesktop {
		return resolved
	}

	if delta, ok := section.Styles[string(device)].(map[string]interface{}); ok {
		for key, value := range delta {
			resolved[key] = value
		}
	}
	return resolved
}

// ResolveContent computes the effective content of a section: for every key,
// external value > section content > template default. This is the only
// place content precedence is decided.
func ResolveContent(section models.Section, template sections.TemplateDefinition, external map[string]interface{}) models.ContentMap {
	resolved := models.ContentMap{}
	for key, value := range template.DefaultData {
		resolved[key] = value
	}
	for key, value := range section.Content {
		resolved[key] = value
	}
	for key, value := range external {
		resolved[key] = value
	}
	return resolved
}
