package models

// TabType distinguishes source viewers from editors
type TabType string

const (
	TabTypeSource TabType = "source"
	TabTypeEditor TabType = "editor"
)

// IsValid checks if the tab type is known
func (t TabType) IsValid() bool {
	return t == TabTypeSource || t == TabTypeEditor
}

// Tab is an open tab in a claim workspace
type Tab struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Type    TabType     `json:"type"`
	Payload *TabPayload `json:"payload,omitempty"`
}

// TabPayload carries what a tab displays
type TabPayload struct {
	SourceName string `json:"source_name,omitempty"`
	Content    string `json:"content,omitempty"`
}

// AddTabRequest opens a tab
type AddTabRequest struct {
	Title   string      `json:"title"`
	Type    TabType     `json:"type"`
	Payload *TabPayload `json:"payload,omitempty"`
}

// SetActiveTabRequest activates a tab; an empty ID clears the selection
type SetActiveTabRequest struct {
	TabID string `json:"tab_id"`
}

// TabsResponse is the observable state of a workspace
type TabsResponse struct {
	Tabs        []Tab  `json:"tabs"`
	ActiveTabID string `json:"active_tab_id,omitempty"`
}
