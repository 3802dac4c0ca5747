package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"minichat-backend/internal/models"
	"minichat-backend/internal/repository"
)

type ConversationHandler struct {
	conversationRepo *repository.ConversationRepo
	messageRepo      *repository.MessageRepo
	history          *repository.HistoryCache
	storagePath      string
}

func NewConversationHandler(
	conversationRepo *repository.ConversationRepo,
	messageRepo *repository.MessageRepo,
	history *repository.HistoryCache,
	storagePath string,
) *ConversationHandler {
	return &ConversationHandler{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		history:          history,
		storagePath:      storagePath,
	}
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.conversationRepo.List(r.Context())
	if err != nil {
		handleRepoError(w, r, err, "Conversations not found")
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	conversation, err := h.conversationRepo.Create(r.Context(), "")
	if err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}

func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseConversationID(w, r)
	if !ok {
		return
	}

	conversation, err := h.conversationRepo.GetByID(r.Context(), id)
	if err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}

func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseConversationID(w, r)
	if !ok {
		return
	}

	messages, err := h.messageRepo.ListByConversation(r.Context(), id)
	if err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *ConversationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseConversationID(w, r)
	if !ok {
		return
	}

	var req models.UpdateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Title is required", r))
		return
	}

	conversation, err := h.conversationRepo.UpdateTitle(r.Context(), id, req.Title)
	if err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}

func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseConversationID(w, r)
	if !ok {
		return
	}

	if _, err := h.conversationRepo.GetByID(r.Context(), id); err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}

	// Remove uploaded images before the rows disappear. Only paths inside
	// the storage directory are touched.
	if paths, err := h.messageRepo.ListImagePaths(r.Context(), id); err == nil {
		for _, path := range paths {
			if inStorage(h.storagePath, path) {
				os.Remove(path)
			}
		}
	}

	if err := h.conversationRepo.Delete(r.Context(), id); err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	h.history.Invalidate(r.Context(), id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation deleted successfully"})
}

func parseConversationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid conversation ID", r))
		return uuid.Nil, false
	}
	return id, true
}

func inStorage(storagePath, path string) bool {
	rel, err := filepath.Rel(storagePath, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
