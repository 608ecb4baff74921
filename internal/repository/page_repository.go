package repository

import (
	"fmt"
	"sync"

	"convite-premium-backend/internal/models"
)

type PageRepository interface {
	Create(page *models.Page) error
	Update(page *models.Page) error
	Delete(id string) error
	GetByID(id string) (*models.Page, error)
}

type pageRepository struct {
	mu    sync.RWMutex
	pages map[string]*models.Page
}

func NewPageRepository() PageRepository {
	return &pageRepository{pages: make(map[string]*models.Page)}
}

func (r *pageRepository) Create(page *models.Page) error {
	if page == nil || page.ID == "" {
		return fmt.Errorf("page id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pages[page.ID]; exists {
		return fmt.Errorf("page %s already exists", page.ID)
	}
	r.pages[page.ID] = page.Clone()
	return nil
}

func (r *pageRepository) Update(page *models.Page) error {
	if page == nil || page.ID == "" {
		return fmt.Errorf("page id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pages[page.ID]; !exists {
		return ErrNotFound
	}
	r.pages[page.ID] = page.Clone()
	return nil
}

func (r *pageRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pages, id)
	return nil
}

func (r *pageRepository) GetByID(id string) (*models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	page, ok := r.pages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return page.Clone(), nil
}
