// Package api provides HTTP handlers for the fulfillment webhook endpoints.
package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/plantycompare/fulfillment/internal/models"
)

// malformedRequestDiagnostic is the plain-text body returned when the inbound
// payload matches neither accepted shape.
const malformedRequestDiagnostic = "Error deserializing intent request from message body"

// webhookHandler handles POST /webhook: one full turn with the platform.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	slog.Debug("Server.webhookHandler: processing webhook request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		slog.Warn("Server.webhookHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Warn("Server.webhookHandler: failed to read request body", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Failed to read request body"))
		return
	}

	resp, err := s.svc.HandleTurn(r.Context(), body)
	if err != nil {
		if errors.Is(err, models.ErrMalformedRequest) {
			slog.Warn("Server.webhookHandler: malformed request", "error", err)
			http.Error(w, malformedRequestDiagnostic, http.StatusBadRequest)
			return
		}
		slog.Error("Server.webhookHandler: turn failed", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to process webhook request"))
		return
	}

	slog.Debug("Server.webhookHandler: turn completed")
	writeJSONResponse(w, http.StatusOK, resp)
}

// healthHandler provides a liveness endpoint for monitoring and load balancing.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSONResponse(w, http.StatusOK, models.Success(healthData))
}
