package server

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the wire envelope for every failure: a stable short code
// plus a human-readable message. Stack traces never leave the process.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func writeDatabaseError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Database error", err.Error())
}
