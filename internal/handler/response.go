package handler

import (
	"encoding/json"
	"net/http"

	"github.com/eventmate/api/internal/model"
)

// Response is the envelope every endpoint responds with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response with an optional message
func WriteData(w http.ResponseWriter, status int, data interface{}, message string) {
	WriteJSON(w, status, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// WriteCollection writes a successful collection response with its length
func WriteCollection(w http.ResponseWriter, status int, data interface{}, count int, message string) {
	WriteJSON(w, status, Response{
		Success: true,
		Data:    data,
		Message: message,
		Count:   &count,
	})
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, err *model.APIError) {
	WriteJSON(w, err.Status, Response{
		Success: false,
		Message: err.Message,
		Errors:  err.Errors,
	})
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
