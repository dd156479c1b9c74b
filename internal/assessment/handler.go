package assessment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vark-assess/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.service.StartSession(r.Context(), req.StudentID, req.GradeBand)
	if err != nil {
		writeError(w, "Start", err)
		return
	}

	writeJSON(w, http.StatusOK, models.StartSessionResponse{
		SessionID: session.ID,
		Step:      session.Step,
		Question:  session.CurrentQuestion.View(),
	})
}

func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	var req models.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.SessionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "sessionId is required"})
		return
	}

	outcome, err := h.service.Respond(r.Context(), req.SessionID, req.Answer)
	if err != nil {
		writeError(w, "Respond", err)
		return
	}

	resp := models.RespondResponse{
		SessionID: outcome.Session.ID,
		Step:      outcome.Session.Step,
	}
	if outcome.Profile != nil {
		resp.Result = outcome.Profile
	} else {
		view := outcome.Question.View()
		resp.Question = &view
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	session, err := h.service.GetSession(r.Context(), vars["id"])
	if err != nil {
		writeError(w, "GetSession", err)
		return
	}

	writeJSON(w, http.StatusOK, session.StateView())
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("[handler] %s error: %v", op, err)
		writeJSON(w, status, models.ErrorResponse{Error: "Internal server error"})
		return
	}
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidAnswer),
		errors.Is(err, ErrMissingAnswer):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSessionNotActive):
		return http.StatusConflict
	case errors.Is(err, ErrClassificationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
