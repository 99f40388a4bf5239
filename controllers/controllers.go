package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"treasurehunt_server/services"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Treasure Hunt API"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps service error kinds to HTTP statuses and replies with the
// {message, statusCode} shape the API contract uses
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	writeJSON(w, status, map[string]interface{}{
		"message":    err.Error(),
		"statusCode": status,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidLocation),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrMissingHuntFields),
		errors.Is(err, services.ErrMalformedCursor):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConcurrentTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrHuntNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message":    message,
		"statusCode": http.StatusBadRequest,
	})
}
