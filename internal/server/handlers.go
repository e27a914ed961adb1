package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	cerrors "mbc-landing-api/internal/common/errors"
	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/models"
	"mbc-landing-api/internal/submission"
)

const genericErrorMessage = "Failed to process application. Please try again later."

// Handlers holds the HTTP handlers for the submission API.
type Handlers struct {
	coordinator *submission.Coordinator
	logger      logger.Logger
	serviceName string
}

func NewHandlers(coordinator *submission.Coordinator, log logger.Logger, serviceName string) *Handlers {
	return &Handlers{
		coordinator: coordinator,
		logger:      log.WithFields(map[string]interface{}{"component": "http"}),
		serviceName: serviceName,
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SubmitApplication handles POST /api/submit-application.
func (h *Handlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var payload models.ApplicationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("malformed submission body", map[string]interface{}{"error": err})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: genericErrorMessage})
		return
	}

	outcome, stdErr := h.coordinator.Submit(r.Context(), payload, r.Host)
	if stdErr != nil {
		h.writeStandardError(w, stdErr)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// writeStandardError maps the internal error taxonomy onto HTTP statuses.
// Only categorized, human-readable messages cross the boundary.
func (h *Handlers) writeStandardError(w http.ResponseWriter, stdErr *cerrors.StandardError) {
	switch stdErr.Code {
	case cerrors.ErrCodeValidationFailed:
		fields := strings.Split(stdErr.Details, ", ")
		msg := "Missing required field: " + fields[0]
		if len(fields) > 1 {
			msg = "Missing required fields: " + stdErr.Details
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
	case cerrors.ErrCodeChannelSendFailed:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: genericErrorMessage})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: genericErrorMessage})
	}
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.serviceName,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
