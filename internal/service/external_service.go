package service

import (
	"sync"

	"convite-premium-backend/internal/models"
)

// ExternalService owns the per-layout external input overlays the embedding
// host drives over the bridge. The overlay never touches the stored layout;
// it is merged in at render time on the public surface only.
type ExternalService struct {
	mu     sync.RWMutex
	states map[string]*models.ExternalInputState // layoutID -> overlay
}

func NewExternalService() *ExternalService {
	return &ExternalService{
		states: make(map[string]*models.ExternalInputState),
	}
}

// SetValue records a host-supplied field value.
func (s *ExternalService) SetValue(layoutID, sectionID, fieldKey string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateLocked(layoutID).SetValue(sectionID, fieldKey, value)
}

// Value returns the host-supplied value for (sectionID, fieldKey) if present.
func (s *ExternalService) Value(layoutID, sectionID, fieldKey string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[layoutID].Value(sectionID, fieldKey)
}

// SetStatus records host-supplied display flags for a field.
func (s *ExternalService) SetStatus(layoutID, sectionID, fieldKey string, status models.FieldStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateLocked(layoutID).SetStatus(sectionID, fieldKey, status)
}

// StateFor returns a snapshot of the layout's overlay, safe to hand to the
// renderer.
func (s *ExternalService) StateFor(layoutID string) *models.ExternalInputState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[layoutID].Clone()
}

// Clear drops the overlay for a layout.
func (s *ExternalService) Clear(layoutID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, layoutID)
}

func (s *ExternalService) stateLocked(layoutID string) *models.ExternalInputState {
	state, ok := s.states[layoutID]
	if !ok {
		state = models.NewExternalInputState()
		s.states[layoutID] = state
	}
	return state
}
