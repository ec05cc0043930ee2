package services

import (
	"strings"
	"sync"

	"claims-assistant/internal/models"

	"github.com/google/uuid"
)

// TabWorkspace holds the open source/editor tabs of a claim session
type TabWorkspace struct {
	mu       sync.Mutex
	tabs     []models.Tab
	activeID string
}

// NewTabWorkspace creates an empty workspace
func NewTabWorkspace() *TabWorkspace {
	return &TabWorkspace{tabs: make([]models.Tab, 0)}
}

// AddTab opens a tab and activates it. Source tabs are unique per title:
// opening one again activates the existing tab and returns its ID.
func (w *TabWorkspace) AddTab(req models.AddTabRequest) (models.Tab, error) {
	if !req.Type.IsValid() {
		return models.Tab{}, &models.ValidationError{Field: "type", Message: "unknown tab type: " + string(req.Type)}
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Tab{}, &models.ValidationError{Field: "title", Message: "title is required"}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if req.Type == models.TabTypeSource {
		for _, existing := range w.tabs {
			if existing.Type == req.Type && existing.Title == title {
				w.activeID = existing.ID
				return existing, nil
			}
		}
	}

	tab := models.Tab{
		ID:    "tab-" + uuid.New().String(),
		Title: title,
		Type:  req.Type,
	}
	if req.Payload != nil {
		payload := *req.Payload
		tab.Payload = &payload
	}
	w.tabs = append(w.tabs, tab)
	w.activeID = tab.ID
	return tab, nil
}

// CloseTab removes a tab; closing the active tab leaves none active
func (w *TabWorkspace) CloseTab(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, tab := range w.tabs {
		if tab.ID == id {
			w.tabs = append(w.tabs[:i], w.tabs[i+1:]...)
			if w.activeID == id {
				w.activeID = ""
			}
			return nil
		}
	}
	return TabNotFoundError(id)
}

// SetActive activates a tab; an empty id clears the selection
func (w *TabWorkspace) SetActive(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if id == "" {
		w.activeID = ""
		return nil
	}
	for _, tab := range w.tabs {
		if tab.ID == id {
			w.activeID = id
			return nil
		}
	}
	return TabNotFoundError(id)
}

// Snapshot returns the open tabs and the active tab ID
func (w *TabWorkspace) Snapshot() models.TabsResponse {
	w.mu.Lock()
	defer w.mu.Unlock()

	tabs := make([]models.Tab, len(w.tabs))
	copy(tabs, w.tabs)
	return models.TabsResponse{
		Tabs:        tabs,
		ActiveTabID: w.activeID,
	}
}
