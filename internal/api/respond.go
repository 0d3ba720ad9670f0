package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/example/sheets-commerce/internal/infrastructure/store"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondMessage writes the short human-readable failure contract:
// {"message": "..."}. Internal detail never leaks to the client.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondStoreError maps persistence failures: missing records become
// 404s, everything else is a 500 with a generic message and a logged
// cause.
func respondStoreError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, notFoundMessage)
		return
	}
	log.Printf("[API] Store error: %v", err)
	respondMessage(w, http.StatusInternalServerError, "Database error")
}
