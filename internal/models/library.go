package models

import "time"

// LibraryFile is a saved reference to an uploaded file
type LibraryFile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedPrompt is a reusable prompt text
type SavedPrompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Library is the full persisted library of the user
type Library struct {
	Files   []LibraryFile `json:"files"`
	Prompts []SavedPrompt `json:"prompts"`
}

// AddLibraryFileRequest adds a file reference; ID is optional
type AddLibraryFileRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// AddSavedPromptRequest saves a prompt; Title is derived from Body when empty
type AddSavedPromptRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
