package service

import (
	"sync"

	"convite-premium-backend/internal/canvas"
	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/repository"
)

// CanvasService is the state controller for the free-form canvas model. It
// owns the page snapshots plus the transient multi-select set; like the
// section controller, every mutator is a no-op on invalid input.
type CanvasService struct {
	repo repository.PageRepository

	mu       sync.Mutex
	selected map[string]map[string]struct{} // pageID -> selected node ids
}

func NewCanvasService(repo repository.PageRepository) *CanvasService {
	return &CanvasService{
		repo:     repo,
		selected: make(map[string]map[string]struct{}),
	}
}

// CreatePage creates an empty canvas page.
func (s *CanvasService) CreatePage(name string) (*models.Page, error) {
	page := canvas.NewPage(name)
	if err := s.repo.Create(page); err != nil {
		return nil, err
	}
	return page.Clone(), nil
}

// GetByID returns a snapshot of the page.
func (s *CanvasService) GetByID(pageID string) (*models.Page, error) {
	return s.repo.GetByID(pageID)
}

// AddNode creates a node and attaches it to the given container, or to the
// page root when parent is empty or unknown. The new node becomes the sole
// selection.
func (s *CanvasService) AddNode(pageID string, req models.AddNodeRequest) (*models.Page, error) {
	page, err := s.repo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	node := canvas.NewNode(req.Type, req.X, req.Y)
	page.Children = canvas.AppendNode(page.Children, req.Parent, node)

	s.mu.Lock()
	s.selected[pageID] = map[string]struct{}{node.ID: {}}
	s.mu.Unlock()

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}
	return page.Clone(), nil
}

// UpdateNode shallow-merges a patch into the node matching id.
func (s *CanvasService) UpdateNode(pageID, nodeID string, patch models.NodePatch) (*models.Page, error) {
	page, err := s.repo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	page.Children = canvas.UpdateNode(page.Children, nodeID, patch)

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}
	return page.Clone(), nil
}

// DeleteNodes removes the listed nodes and drops them from the selection.
func (s *CanvasService) DeleteNodes(pageID string, ids []string) (*models.Page, error) {
	page, err := s.repo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	page.Children = canvas.DeleteNodes(page.Children, idSet)

	s.mu.Lock()
	for id := range idSet {
		delete(s.selected[pageID], id)
	}
	s.mu.Unlock()

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}
	return page.Clone(), nil
}

// MoveNodes offsets the listed nodes by (dx, dy).
func (s *CanvasService) MoveNodes(pageID string, ids []string, dx, dy float64) (*models.Page, error) {
	page, err := s.repo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	page.Children = canvas.MoveBy(page.Children, idSet, dx, dy)

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}
	return page.Clone(), nil
}

// MoveSelected offsets the current selection by (dx, dy).
func (s *CanvasService) MoveSelected(pageID string, dx, dy float64) (*models.Page, error) {
	return s.MoveNodes(pageID, s.SelectedIDs(pageID), dx, dy)
}

// Select makes nodeID the selection. With additive set (ctrl/cmd-click) the
// node toggles its membership in the multi-select set instead.
func (s *CanvasService) Select(pageID, nodeID string, additive bool) {
	page, err := s.repo.GetByID(pageID)
	if err != nil {
		return
	}
	if _, ok := canvas.FindNode(page.Children, nodeID); !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !additive {
		s.selected[pageID] = map[string]struct{}{nodeID: {}}
		return
	}

	current := s.selected[pageID]
	if current == nil {
		current = make(map[string]struct{})
		s.selected[pageID] = current
	}
	if _, ok := current[nodeID]; ok {
		delete(current, nodeID)
	} else {
		current[nodeID] = struct{}{}
	}
}

// ClearSelection empties the selection (click on empty canvas).
func (s *CanvasService) ClearSelection(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selected, pageID)
}

// SelectedIDs returns the selected node ids.
func (s *CanvasService) SelectedIDs(pageID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.selected[pageID]))
	for id := range s.selected[pageID] {
		ids = append(ids, id)
	}
	return ids
}
