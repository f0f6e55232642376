package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the success body for signup and removal operations.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the error body for all failed operations.
// swagger:model DetailResponse
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONMessage writes a 200 response with a {"message": ...} body.
func WriteJSONMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteJSONDetail writes an error response with a {"detail": ...} body.
func WriteJSONDetail(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, DetailResponse{Detail: detail})
}
