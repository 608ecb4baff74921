package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/repository"
	"convite-premium-backend/internal/service"
)

func newLayoutRouter(t *testing.T) (*gin.Engine, *service.LayoutService, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	layoutService := service.NewLayoutService(repository.NewLayoutRepository(), nil)
	handler := NewLayoutHandler(layoutService)

	router := gin.New()
	router.GET("/api/layouts/:id", handler.GetLayout)
	router.DELETE("/api/layouts/:id", handler.DeleteLayout)
	router.POST("/api/layouts", handler.CreateLayout)
	router.POST("/api/layouts/:id/sections", handler.AddSection)
	router.DELETE("/api/layouts/:id/sections/:sectionId", handler.DeleteSection)
	router.PATCH("/api/layouts/:id/sections/:sectionId/content", handler.UpdateSectionContent)

	layout, err := layoutService.Load(&models.EventLayout{Name: "Teste", Language: "pt-BR"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return router, layoutService, layout.ID
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateLayoutFromTemplate(t *testing.T) {
	router, _, _ := newLayoutRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/layouts", gin.H{
		"template_id": "wedding",
		"name":        "Ana & Pedro",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Layout models.EventLayout `json:"layout"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if response.Layout.Sections[0].Type != models.SplashSection {
		t.Fatalf("expected splash first, got %s", response.Layout.Sections[0].Type)
	}

	bad := doJSON(t, router, http.MethodPost, "/api/layouts", gin.H{"template_id": "nope"})
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown template, got %d", bad.Code)
	}
}

func TestAddAndDeleteSectionOverHTTP(t *testing.T) {
	router, layoutService, layoutID := newLayoutRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/layouts/"+layoutID+"/sections", gin.H{"type": "hero"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	layout, _ := layoutService.GetByID(layoutID)
	if len(layout.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(layout.Sections))
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/layouts/"+layoutID+"/sections/"+layout.Sections[0].ID, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	layout, _ = layoutService.GetByID(layoutID)
	if len(layout.Sections) != 0 {
		t.Fatalf("expected empty layout, got %d sections", len(layout.Sections))
	}
}

func TestUpdateSectionContentOverHTTP(t *testing.T) {
	router, layoutService, layoutID := newLayoutRouter(t)

	doJSON(t, router, http.MethodPost, "/api/layouts/"+layoutID+"/sections", gin.H{"type": "hero"})
	layout, _ := layoutService.GetByID(layoutID)
	heroID := layout.Sections[0].ID

	recorder := doJSON(t, router, http.MethodPatch, "/api/layouts/"+layoutID+"/sections/"+heroID+"/content", gin.H{
		"content": gin.H{"title": "Ana & Pedro"},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	layout, _ = layoutService.GetByID(layoutID)
	if layout.Sections[0].Content["title"] != "Ana & Pedro" {
		t.Fatalf("expected patched title, got %v", layout.Sections[0].Content["title"])
	}
}

func TestGetLayout_NotFound(t *testing.T) {
	router, _, _ := newLayoutRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/layouts/missing", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestDeleteLayoutOverHTTP(t *testing.T) {
	router, _, layoutID := newLayoutRouter(t)

	recorder := doJSON(t, router, http.MethodDelete, "/api/layouts/"+layoutID, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/layouts/"+layoutID, nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/layouts/"+layoutID, nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a repeated delete, got %d", recorder.Code)
	}
}

func TestMalformedBody(t *testing.T) {
	router, _, layoutID := newLayoutRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/layouts/"+layoutID+"/sections", bytes.NewReader([]byte(`{"type":`)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}
