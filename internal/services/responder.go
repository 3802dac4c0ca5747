package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"minichat-backend/internal/locale"
	"minichat-backend/internal/models"
)

var unavailableMessages = locale.MustComplete("unavailableMessages", locale.Table{
	locale.French:  "Désolé, le service d'IA n'est pas disponible pour le moment. Veuillez réessayer plus tard.",
	locale.English: "Sorry, the AI service is not available at the moment. Please try again later.",
	locale.Arabic:  "عذرًا، خدمة الذكاء الاصطناعي غير متاحة حاليًا. يرجى المحاولة مرة أخرى لاحقًا.",
})

var genericErrorTemplates = locale.MustComplete("genericErrorTemplates", locale.Table{
	locale.French:  "Désolé, une erreur s'est produite. Veuillez réessayer. Erreur: %s",
	locale.English: "Sorry, an error occurred. Please try again. Error: %s",
	locale.Arabic:  "عذرًا، حدث خطأ. يرجى المحاولة مرة أخرى. الخطأ: %s",
})

var describeImageMessages = locale.MustComplete("describeImageMessages", locale.Table{
	locale.French:  "Décris cette image en détail",
	locale.English: "Describe this image in detail",
	locale.Arabic:  "اوصف هذه الصورة بالتفصيل",
})

// displayedErrorLimit bounds the fault text embedded in user-facing error
// messages.
const displayedErrorLimit = 100

// Responder orchestrates the response pipeline: language detection,
// normalization, gateway dispatch and graceful degradation to localized
// text. Its contract is total: it always returns a payload, never an error.
type Responder struct {
	provider *GatewayProvider
}

func NewResponder(provider *GatewayProvider) *Responder {
	return &Responder{provider: provider}
}

// GenerateResponse produces the assistant reply for one user turn. history
// is the persisted conversation excluding the current message; image may be
// nil.
func (r *Responder) GenerateResponse(ctx context.Context, userMessage string, image []byte, history []models.ChatMessage) models.ResponsePayload {
	loc := DetectLanguage(userMessage)
	normalized := Normalize(userMessage)

	if normalized == "" && len(image) == 0 {
		return models.ResponsePayload{Content: EmptyMessageReply(loc), Language: loc}
	}

	gateway, err := r.provider.Get(ctx)
	if err != nil {
		return models.ResponsePayload{Content: unavailableMessages.Get(loc), Language: loc}
	}

	var reply string
	if len(image) > 0 {
		log.Printf("📸 Analyzing image with Gemini vision (language: %s)", loc)
		message := userMessage
		if strings.TrimSpace(message) == "" {
			message = describeImageMessages.Get(loc)
		}
		reply, err = gateway.GenerateImageResponse(ctx, BuildImagePrompt(loc, message), image)
	} else {
		log.Printf("💬 Generating text response with Gemini (language: %s)", loc)
		reply, err = gateway.GenerateText(ctx, BuildPrompt(loc, history, userMessage))
	}

	if err != nil {
		log.Printf("❌ Gemini call failed: %v", err)
		detail := truncateMessage(err.Error(), displayedErrorLimit)
		return models.ResponsePayload{
			Content:  fmt.Sprintf(genericErrorTemplates.Get(loc), detail),
			Language: loc,
		}
	}

	return models.ResponsePayload{Content: reply, Language: loc}
}
