package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/ai"
	"github.com/patriotech/marketing-intel/internal/service"
)

type ChatHandler struct {
	Service *service.ChatService
}

// Modes lists the conversation modes with their descriptions.
func (h *ChatHandler) Modes(w http.ResponseWriter, r *http.Request) {
	modes := make([]map[string]string, 0, len(ai.Modes))
	for _, mode := range ai.Modes {
		modes = append(modes, map[string]string{
			"id":          mode,
			"description": ai.ModeDescriptions[mode],
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"modes": modes})
}

// Prompts returns the canned starter prompts for a mode.
func (h *ChatHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	if !ai.ValidMode(mode) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chat mode %q", mode))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"mode":    mode,
		"prompts": ai.SuggestedPrompts[mode],
	})
}

// Suggestions returns ranked follow-up prompts for a session.
func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string   `json:"session_id"`
		Dismissed []string `json:"dismissed"`
		Max       int      `json:"max"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	suggestions, err := h.Service.Suggest(r.Context(), body.SessionID, body.Dismissed, body.Max)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrganizationID *string `json:"organization_id"`
		Mode           string  `json:"mode"`
		Title          string  `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := h.Service.CreateSession(body.OrganizationID, body.Mode, body.Title)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sessions, err := h.Service.ListSessions(r.URL.Query().Get("organization_id"), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": sessions})
}

func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.Service.GetSession(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	messages, err := h.Service.ListMessages(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":  session,
		"messages": messages,
	})
}

func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSession(chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SendMessage asks the consultant and waits for the full reply.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Configured() {
		writeError(w, http.StatusServiceUnavailable, "AI consultant is not configured, set ANTHROPIC_API_KEY")
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reply, err := h.Service.SendMessage(r.Context(), chi.URLParam(r, "id"), body.Message)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// StreamMessage is SendMessage over SSE: data: chunks, then data: [DONE].
func (h *ChatHandler) StreamMessage(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Configured() {
		writeError(w, http.StatusServiceUnavailable, "AI consultant is not configured, set ANTHROPIC_API_KEY")
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	chunks, errs, err := h.Service.StreamMessage(r.Context(), chi.URLParam(r, "id"), body.Message)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for chunk := range chunks {
		encoded, _ := json.Marshal(map[string]string{"text": chunk})
		fmt.Fprintf(w, "data: %s\n\n", encoded)
		flusher.Flush()
	}
	if err := <-errs; err != nil {
		encoded, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintf(w, "data: %s\n\n", encoded)
		flusher.Flush()
		return
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
