package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the error shape of the API: {"error":"..."}. The field text is
// part of the wire contract ("Snippet not found", "Invalid JSON", "Not found")
// and must not change.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response. Every JSON response carries the open CORS
// header so the UI page can be served from elsewhere during development, the
// same as the original server.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already out; nothing left to do but log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeStorageError reports an unexpected store failure. Storage faults are
// fatal to the request, never retried, and never leak internals.
func writeStorageError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
}
