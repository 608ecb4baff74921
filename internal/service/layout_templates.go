package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/sections"
)

// LayoutTemplate is a predefined invitation layout.
type LayoutTemplate struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	EventType    string               `json:"event_type"`
	SectionTypes []models.SectionType `json:"section_types"`
	GlobalStyles models.GlobalStyles  `json:"global_styles"`
}

// LayoutTemplates returns the available invitation templates.
func (s *LayoutService) LayoutTemplates() []LayoutTemplate {
	return []LayoutTemplate{
		{
			ID:          "blank",
			Name:        "Em branco",
			Description: "Comece do zero",
			EventType:   "custom",
			SectionTypes: []models.SectionType{
				models.HeroSection,
			},
			GlobalStyles: defaultGlobalStyles("#4a4a4a", "#b08d57"),
		},
		{
			ID:          "wedding",
			Name:        "Casamento",
			Description: "Abertura, contagem regressiva, programação e RSVP",
			EventType:   "wedding",
			SectionTypes: []models.SectionType{
				models.SplashSection,
				models.HeroSection,
				models.CountdownSection,
				models.AgendaSection,
				models.RSVPSection,
				models.GiftsSection,
				models.GuestbookSection,
			},
			GlobalStyles: defaultGlobalStyles("#7c5c3e", "#d4af7a"),
		},
		{
			ID:          "birthday",
			Name:        "Aniversário",
			Description: "Convite animado com mural de recados",
			EventType:   "birthday",
			SectionTypes: []models.SectionType{
				models.SplashSection,
				models.HeroSection,
				models.CountdownSection,
				models.RSVPSection,
				models.GuestbookSection,
			},
			GlobalStyles: defaultGlobalStyles("#3b5bdb", "#f59f00"),
		},
		{
			ID:          "corporate",
			Name:        "Corporativo",
			Description: "Evento empresarial com programação",
			EventType:   "corporate",
			SectionTypes: []models.SectionType{
				models.HeroSection,
				models.AgendaSection,
				models.RSVPSection,
			},
			GlobalStyles: defaultGlobalStyles("#1864ab", "#495057"),
		},
	}
}

// CreateFromTemplate creates a new layout from a template, generating fresh
// section ids so templates never share state with documents.
func (s *LayoutService) CreateFromTemplate(templateID, name, language string) (*models.EventLayout, error) {
	var selected *LayoutTemplate
	for _, tmpl := range s.LayoutTemplates() {
		if tmpl.ID == templateID {
			selected = &tmpl
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("template not found: %s", templateID)
	}

	if strings.TrimSpace(name) == "" {
		name = selected.Name
	}

	layout := &models.EventLayout{
		ID:           uuid.New().String(),
		Name:         name,
		EventType:    selected.EventType,
		Language:     language,
		GlobalStyles: selected.GlobalStyles,
		Sections:     make([]models.Section, 0, len(selected.SectionTypes)),
	}
	for _, sectionType := range selected.SectionTypes {
		layout.Sections = append(layout.Sections, sections.CreateSection(sectionType))
	}

	if err := s.repo.Create(layout); err != nil {
		return nil, err
	}

	snapshot := layout.Clone()
	s.broadcaster.LayoutChanged(snapshot)
	return snapshot, nil
}

func defaultGlobalStyles(primary, secondary string) models.GlobalStyles {
	return models.GlobalStyles{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		FontFamilyTitle: "Playfair Display",
		FontFamilyBody:  "Lato",
		BackgroundColor: "#fdfbf7",
		LayoutMode:      models.LayoutFull,
	}
}
