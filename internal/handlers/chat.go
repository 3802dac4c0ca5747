package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"minichat-backend/internal/models"
	"minichat-backend/internal/repository"
	"minichat-backend/internal/services"
)

// maxImageBytes matches the Gemini API inline-image cap.
const maxImageBytes = 20 * 1024 * 1024

// conversationTitleLimit bounds auto-generated titles taken from the first
// message.
const conversationTitleLimit = 50

type ChatHandler struct {
	conversationRepo *repository.ConversationRepo
	messageRepo      *repository.MessageRepo
	history          *repository.HistoryCache
	responder        *services.Responder
	redis            *redis.Client
	storagePath      string
}

func NewChatHandler(
	conversationRepo *repository.ConversationRepo,
	messageRepo *repository.MessageRepo,
	history *repository.HistoryCache,
	responder *services.Responder,
	redisClient *redis.Client,
	storagePath string,
) *ChatHandler {
	return &ChatHandler{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		history:          history,
		responder:        responder,
		redis:            redisClient,
		storagePath:      storagePath,
	}
}

// Send handles POST /api/v1/chat: persists the user turn (and any uploaded
// image), runs the response pipeline and returns the assistant message.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes + 1024*1024); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid multipart form", r))
		return
	}

	content := r.FormValue("content")
	imageBytes, imageName, ok := h.readImage(w, r)
	if !ok {
		return
	}

	if strings.TrimSpace(content) == "" && imageBytes == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message cannot be empty", r))
		return
	}

	conversation, ok := h.resolveConversation(w, r, content)
	if !ok {
		return
	}

	var imagePath *string
	if imageBytes != nil {
		path, err := h.saveImage(conversation.ID, imageName, imageBytes)
		if err != nil {
			log.Printf("Failed to store uploaded image: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store uploaded image", r))
			return
		}
		imagePath = &path
		log.Printf("📸 Image uploaded: %s, size: %d bytes", imageName, len(imageBytes))
	}

	// History window source: cached turns if present, otherwise the
	// messages table. Loaded before the current user turn is saved so the
	// pipeline never sees its own input as history.
	history, cached := h.history.Get(r.Context(), conversation.ID)
	if !cached {
		stored, err := h.messageRepo.ListByConversation(r.Context(), conversation.ID)
		if err != nil {
			handleRepoError(w, r, err, "Conversation not found")
			return
		}
		history = make([]models.ChatMessage, 0, len(stored))
		for _, m := range stored {
			history = append(history, models.ChatMessage{Role: m.Role, Content: m.Content})
		}
		h.history.Prime(r.Context(), conversation.ID, history)
	}

	userMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.RoleUser,
		Content:        content,
		ImagePath:      imagePath,
	}
	if err := h.messageRepo.Create(r.Context(), userMessage); err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	h.history.Append(r.Context(), conversation.ID, models.ChatMessage{Role: models.RoleUser, Content: content})
	h.publishMessage(r, conversation.ID, userMessage)

	payload := h.responder.GenerateResponse(r.Context(), content, imageBytes, history)

	botMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.RoleAssistant,
		Content:        payload.Content,
	}
	if err := h.messageRepo.Create(r.Context(), botMessage); err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return
	}
	h.history.Append(r.Context(), conversation.ID, models.ChatMessage{Role: models.RoleAssistant, Content: payload.Content})
	h.publishMessage(r, conversation.ID, botMessage)

	if err := h.conversationRepo.Touch(r.Context(), conversation.ID); err == nil {
		if refreshed, err := h.conversationRepo.GetByID(r.Context(), conversation.ID); err == nil {
			conversation = refreshed
		}
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Message:      *botMessage,
		Conversation: *conversation,
	})
}

func (h *ChatHandler) readImage(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, "", true
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid image upload", r))
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Failed to read image upload", r))
		return nil, "", false
	}
	if len(data) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Image file is empty", r))
		return nil, "", false
	}
	if len(data) > maxImageBytes {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Image file is too large (max 20MB)", r))
		return nil, "", false
	}

	name := "image"
	if header.Filename != "" {
		name = strings.ReplaceAll(filepath.Base(header.Filename), " ", "_")
	}
	return data, name, true
}

func (h *ChatHandler) resolveConversation(w http.ResponseWriter, r *http.Request, content string) (*models.Conversation, bool) {
	idStr := r.FormValue("conversation_id")
	if idStr == "" {
		conversation, err := h.conversationRepo.Create(r.Context(), titleFromContent(content))
		if err != nil {
			handleRepoError(w, r, err, "Conversation not found")
			return nil, false
		}
		return conversation, true
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid conversation ID", r))
		return nil, false
	}

	conversation, err := h.conversationRepo.GetByID(r.Context(), id)
	if err != nil {
		handleRepoError(w, r, err, "Conversation not found")
		return nil, false
	}
	return conversation, true
}

func (h *ChatHandler) saveImage(conversationID uuid.UUID, name string, data []byte) (string, error) {
	if err := os.MkdirAll(h.storagePath, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%d_%s", conversationID, time.Now().UnixNano(), name)
	path := filepath.Join(h.storagePath, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (h *ChatHandler) publishMessage(r *http.Request, conversationID uuid.UUID, message *models.Message) {
	event := models.WSMessage{
		Type: "message_created",
		Payload: models.MessageEvent{
			ConversationID: conversationID,
			Message:        *message,
		},
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.redis.Publish(r.Context(), "conversation_updates:"+conversationID.String(), string(data))
}

func titleFromContent(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	runes := []rune(content)
	if len(runes) > conversationTitleLimit {
		return string(runes[:conversationTitleLimit])
	}
	return content
}
