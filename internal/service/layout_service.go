package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/repository"
	"convite-premium-backend/internal/sections"
	"convite-premium-backend/pkg/logger"
)

// LayoutService is the document state controller for section-based
// invitation layouts. It owns the canonical snapshots, the per-layout active
// section, and the splash pin invariant: when a splash section exists it sits
// at index 0, is unique, and no mutation moves it or moves anything above it.
//
// Invalid operations are no-ops rather than errors. The caller is an
// interactive editor whose feedback is the absence of change, so every
// mutator is total over its inputs; only a missing layout id is an error.
type LayoutService struct {
	repo        repository.LayoutRepository
	broadcaster Broadcaster

	mu        sync.Mutex
	active    map[string]string // layoutID -> active section id
	onDeleted func(layoutID string)
}

func NewLayoutService(repo repository.LayoutRepository, broadcaster Broadcaster) *LayoutService {
	if broadcaster == nil {
		broadcaster = NopBroadcaster{}
	}
	return &LayoutService{
		repo:        repo,
		broadcaster: broadcaster,
		active:      make(map[string]string),
	}
}

// GetByID returns a snapshot of the layout.
func (s *LayoutService) GetByID(layoutID string) (*models.EventLayout, error) {
	return s.repo.GetByID(layoutID)
}

// Load replaces the whole layout (host "load layout" command). A missing id
// creates the document.
func (s *LayoutService) Load(layout *models.EventLayout) (*models.EventLayout, error) {
	if layout == nil {
		return nil, fmt.Errorf("layout is required")
	}
	if layout.ID == "" {
		layout.ID = uuid.New().String()
	}

	if err := s.repo.Update(layout); err != nil {
		if err := s.repo.Create(layout); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	delete(s.active, layout.ID)
	s.mu.Unlock()

	snapshot := layout.Clone()
	s.broadcaster.LayoutChanged(snapshot)
	return snapshot, nil
}

// OnDeleted registers a hook that runs after a layout is removed, so
// per-layout surface state (gates, caches, external overlays) can be
// released alongside the document.
func (s *LayoutService) OnDeleted(fn func(layoutID string)) {
	s.onDeleted = fn
}

// Delete removes the layout and its transient editing state.
func (s *LayoutService) Delete(layoutID string) error {
	if _, err := s.repo.GetByID(layoutID); err != nil {
		return err
	}
	if err := s.repo.Delete(layoutID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.active, layoutID)
	s.mu.Unlock()

	if s.onDeleted != nil {
		s.onDeleted(layoutID)
	}

	logger.Info("Layout deleted", map[string]interface{}{"layout_id": layoutID})
	return nil
}

// ActiveSection returns the active section id for the layout, or "".
func (s *LayoutService) ActiveSection(layoutID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[layoutID]
}

// SetActiveSection marks a section as the editing target. An empty id or an
// id not present in the layout clears the selection.
func (s *LayoutService) SetActiveSection(layoutID, sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sectionID == "" {
		delete(s.active, layoutID)
		return
	}

	layout, err := s.repo.GetByID(layoutID)
	if err != nil || layout.SectionByID(sectionID) == nil {
		delete(s.active, layoutID)
		return
	}
	s.active[layoutID] = sectionID
}

// AddSection creates a section of the given type and inserts it after the
// active section when one is set, else at the end. A splash is always forced
// to index 0; a second splash is rejected silently.
func (s *LayoutService) AddSection(layoutID string, sectionType models.SectionType) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	if sectionType == models.SplashSection && layout.HasSplash() {
		logger.Debug("Rejected duplicate splash section", map[string]interface{}{"layout_id": layoutID})
		return layout, nil
	}

	section := sections.CreateSection(sectionType)

	if sectionType == models.SplashSection {
		layout.Sections = append([]models.Section{section}, layout.Sections...)
	} else {
		index := len(layout.Sections)
		if activeID := s.ActiveSection(layoutID); activeID != "" {
			for i := range layout.Sections {
				if layout.Sections[i].ID == activeID {
					index = i + 1
					break
				}
			}
		}
		expanded := make([]models.Section, 0, len(layout.Sections)+1)
		expanded = append(expanded, layout.Sections[:index]...)
		expanded = append(expanded, section)
		expanded = append(expanded, layout.Sections[index:]...)
		layout.Sections = expanded
	}

	s.mu.Lock()
	s.active[layoutID] = section.ID
	s.mu.Unlock()

	return s.commit(layout)
}

// DeleteSection removes a section by id. The active selection is cleared
// when it pointed at the removed section; an absent id is a no-op.
func (s *LayoutService) DeleteSection(layoutID, sectionID string) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Section, 0, len(layout.Sections))
	removed := false
	for _, section := range layout.Sections {
		if section.ID == sectionID {
			removed = true
			continue
		}
		kept = append(kept, section)
	}
	if !removed {
		return layout, nil
	}
	layout.Sections = kept

	s.mu.Lock()
	if s.active[layoutID] == sectionID {
		delete(s.active, layoutID)
	}
	s.mu.Unlock()

	return s.commit(layout)
}

// UpdateSectionContent shallow-merges patch into the section's content bag.
func (s *LayoutService) UpdateSectionContent(layoutID, sectionID string, patch models.ContentMap) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	section := layout.SectionByID(sectionID)
	if section == nil || len(patch) == 0 {
		return layout, nil
	}

	if section.Content == nil {
		section.Content = models.ContentMap{}
	}
	for key, value := range patch {
		section.Content[key] = value
	}

	return s.commit(layout)
}

// UpdateSectionStyles shallow-merges patch into the section's styles.
func (s *LayoutService) UpdateSectionStyles(layoutID, sectionID string, patch models.StyleMap) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	section := layout.SectionByID(sectionID)
	if section == nil || len(patch) == 0 {
		return layout, nil
	}

	if section.Styles == nil {
		section.Styles = models.StyleMap{}
	}
	for key, value := range patch {
		section.Styles[key] = value
	}

	return s.commit(layout)
}

// MoveSection swaps the section at index with its neighbour in the given
// direction ("up" is toward index 0). Out-of-bounds moves and moves that
// would displace a pinned splash are no-ops.
func (s *LayoutService) MoveSection(layoutID string, index int, direction string) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	target := index + 1
	if direction == "up" {
		target = index - 1
	}

	if index < 0 || index >= len(layout.Sections) || target < 0 || target >= len(layout.Sections) {
		return layout, nil
	}
	if layout.Sections[0].Type == models.SplashSection && (index == 0 || target == 0) {
		return layout, nil
	}

	layout.Sections[index], layout.Sections[target] = layout.Sections[target], layout.Sections[index]
	return s.commit(layout)
}

// MoveSectionByID moves the section with the given id one step (host bridge
// command); an absent id is a no-op.
func (s *LayoutService) MoveSectionByID(layoutID, sectionID, direction string) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	for i := range layout.Sections {
		if layout.Sections[i].ID == sectionID {
			return s.MoveSection(layoutID, i, direction)
		}
	}
	return layout, nil
}

// ReorderSections removes the section at from and reinserts it at to.
// Dragging the pinned splash, dropping onto its slot, or indexing out of
// bounds are no-ops.
func (s *LayoutService) ReorderSections(layoutID string, from, to int) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	if from < 0 || from >= len(layout.Sections) || to < 0 || to >= len(layout.Sections) || from == to {
		return layout, nil
	}
	if layout.Sections[0].Type == models.SplashSection && (from == 0 || to == 0) {
		return layout, nil
	}

	section := layout.Sections[from]
	rest := append(layout.Sections[:from:from], layout.Sections[from+1:]...)
	reordered := make([]models.Section, 0, len(layout.Sections))
	reordered = append(reordered, rest[:to]...)
	reordered = append(reordered, section)
	reordered = append(reordered, rest[to:]...)
	layout.Sections = reordered

	return s.commit(layout)
}

// DuplicateSection inserts a deep copy of the section, with fresh ids, right
// after the original. The splash cannot be duplicated (it must stay unique).
func (s *LayoutService) DuplicateSection(layoutID, sectionID string) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	for i := range layout.Sections {
		if layout.Sections[i].ID != sectionID {
			continue
		}
		if layout.Sections[i].Type == models.SplashSection {
			return layout, nil
		}

		duplicate := layout.Sections[i].Clone()
		duplicate.ID = uuid.New().String()

		expanded := make([]models.Section, 0, len(layout.Sections)+1)
		expanded = append(expanded, layout.Sections[:i+1]...)
		expanded = append(expanded, duplicate)
		expanded = append(expanded, layout.Sections[i+1:]...)
		layout.Sections = expanded

		return s.commit(layout)
	}
	return layout, nil
}

// ToggleSectionVisibility flips the hidden flag of a section.
func (s *LayoutService) ToggleSectionVisibility(layoutID, sectionID string) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	section := layout.SectionByID(sectionID)
	if section == nil {
		return layout, nil
	}
	section.IsHidden = !section.IsHidden

	return s.commit(layout)
}

// UpdateGlobalStyles replaces the design tokens named in the request.
func (s *LayoutService) UpdateGlobalStyles(layoutID string, req models.UpdateGlobalStylesRequest) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	styles := &layout.GlobalStyles
	if req.PrimaryColor != nil {
		styles.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		styles.SecondaryColor = *req.SecondaryColor
	}
	if req.FontFamilyTitle != nil {
		styles.FontFamilyTitle = *req.FontFamilyTitle
	}
	if req.FontFamilyBody != nil {
		styles.FontFamilyBody = *req.FontFamilyBody
	}
	if req.BackgroundColor != nil {
		styles.BackgroundColor = *req.BackgroundColor
	}
	if req.LayoutMode != nil {
		styles.LayoutMode = *req.LayoutMode
	}
	if req.ContainerBorderRadius != nil {
		radius := *req.ContainerBorderRadius
		styles.ContainerBorderRadius = &radius
	}
	if req.ThemeShades != nil {
		shades := *req.ThemeShades
		styles.ThemeShades = &shades
	}

	return s.commit(layout)
}

// UpdateSettings replaces layout-level metadata.
func (s *LayoutService) UpdateSettings(layoutID string, req models.UpdateLayoutSettingsRequest) (*models.EventLayout, error) {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		layout.Name = *req.Name
	}
	if req.EventType != nil {
		layout.EventType = *req.EventType
	}
	if req.Language != nil {
		layout.Language = *req.Language
	}
	if req.MusicURL != nil {
		layout.MusicURL = *req.MusicURL
	}
	if req.Effects != nil {
		layout.Effects = *req.Effects
	}

	return s.commit(layout)
}

// commit stores the mutated snapshot and broadcasts it.
func (s *LayoutService) commit(layout *models.EventLayout) (*models.EventLayout, error) {
	if err := s.repo.Update(layout); err != nil {
		return nil, err
	}
	snapshot := layout.Clone()
	s.broadcaster.LayoutChanged(snapshot)
	return snapshot, nil
}
