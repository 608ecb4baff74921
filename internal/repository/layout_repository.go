// Package repository holds the in-memory stores for editor documents.
// Layouts are per-session working documents; durable storage is the
// embedding host's concern, so the stores are deliberately memory-only.
package repository

import (
	"fmt"
	"sort"
	"sync"

	"convite-premium-backend/internal/models"
)

var ErrNotFound = fmt.Errorf("not found")

type LayoutRepository interface {
	Create(layout *models.EventLayout) error
	Update(layout *models.EventLayout) error
	Delete(id string) error
	GetByID(id string) (*models.EventLayout, error)
	GetAll() ([]models.EventLayout, error)
}

type layoutRepository struct {
	mu      sync.RWMutex
	layouts map[string]*models.EventLayout
}

func NewLayoutRepository() LayoutRepository {
	return &layoutRepository{layouts: make(map[string]*models.EventLayout)}
}

func (r *layoutRepository) Create(layout *models.EventLayout) error {
	if layout == nil || layout.ID == "" {
		return fmt.Errorf("layout id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.layouts[layout.ID]; exists {
		return fmt.Errorf("layout %s already exists", layout.ID)
	}
	r.layouts[layout.ID] = layout.Clone()
	return nil
}

func (r *layoutRepository) Update(layout *models.EventLayout) error {
	if layout == nil || layout.ID == "" {
		return fmt.Errorf("layout id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.layouts[layout.ID]; !exists {
		return ErrNotFound
	}
	r.layouts[layout.ID] = layout.Clone()
	return nil
}

func (r *layoutRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.layouts, id)
	return nil
}

func (r *layoutRepository) GetByID(id string) (*models.EventLayout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	layout, ok := r.layouts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return layout.Clone(), nil
}

func (r *layoutRepository) GetAll() ([]models.EventLayout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.EventLayout, 0, len(r.layouts))
	for _, layout := range r.layouts {
		result = append(result, *layout.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
