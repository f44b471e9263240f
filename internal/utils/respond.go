package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response body shape the dashboard consumes.
type Envelope struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// WriteJSON serializes any payload with the given HTTP status code.
func WriteJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// WriteEnvelope wraps data in the standard status/data/message envelope.
func WriteEnvelope(w http.ResponseWriter, code int, data interface{}, message string) {
	WriteJSON(w, code, Envelope{Status: code, Data: data, Message: message})
}
