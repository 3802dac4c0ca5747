package models

import (
	"time"

	"github.com/google/uuid"

	"minichat-backend/internal/locale"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is a persisted thread of messages.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a persisted conversation turn, optionally carrying an uploaded image.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	ImagePath      *string   `json:"image_path"`
	CreatedAt      time.Time `json:"created_at"`
}

// ResponsePayload is the output contract of the response pipeline.
type ResponsePayload struct {
	Content  string        `json:"content"`
	Language locale.Locale `json:"language"`
}

// ChatResponse is the reply from the chat endpoint: the assistant message
// plus the (possibly just created) conversation it belongs to.
type ChatResponse struct {
	Message      Message      `json:"message"`
	Conversation Conversation `json:"conversation"`
}

// UpdateConversationRequest renames a conversation.
type UpdateConversationRequest struct {
	Title string `json:"title"`
}
