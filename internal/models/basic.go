package models

// BasicResponse is a plain status message
type BasicResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
