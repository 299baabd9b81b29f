package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the generic response wrapper. Every endpoint reports
// success plus a human-readable message; the optional fields appear
// only where the operation produces them.
type Envelope struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
	EmailID      string `json:"emailId,omitempty"`
	Development  bool   `json:"development,omitempty"`
	AttemptsLeft *int   `json:"attemptsLeft,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Success: false, Message: msg})
}

func intPtr(n int) *int { return &n }
