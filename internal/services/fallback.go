package services

import (
	"fmt"
	"math/rand"

	"minichat-backend/internal/locale"
)

// Fallback responder: deterministic, keyword-driven replies used when the AI
// gateway cannot be reached at all. Pure apart from the random pick among
// fixed per-locale sets; every branch returns a non-empty string.

var greetings = locale.MustCompleteList("greetings", locale.List{
	locale.French: {
		"Bonjour ! Comment puis-je vous aider ?",
		"Salut ! Que puis-je faire pour vous ?",
		"Bonjour ! En quoi puis-je vous assister aujourd'hui ?",
	},
	locale.English: {
		"Hello! How can I help you?",
		"Hi! What can I do for you?",
		"Hello! How may I assist you today?",
	},
	locale.Arabic: {
		"مرحبا! كيف يمكنني مساعدتك؟",
		"أهلا! ماذا يمكنني أن أفعل لك؟",
		"مرحبا! كيف يمكنني مساعدتك اليوم؟",
	},
})

var emptyMessageResponses = locale.MustCompleteList("emptyMessageResponses", locale.List{
	locale.French: {
		"Veuillez saisir un message. Je suis là pour vous aider !",
		"Veuillez écrire un message pour commencer.",
		"Votre message est vide. Que puis-je faire pour vous ?",
	},
	locale.English: {
		"Please enter a message. I'm here to help!",
		"Please type a message to get started.",
		"Your message is empty. What can I do for you?",
	},
	locale.Arabic: {
		"يرجى إدخال رسالة. أنا هنا لمساعدتك!",
		"يرجى كتابة رسالة للبدء.",
		"رسالتك فارغة. ماذا يمكنني أن أفعل لك؟",
	},
})

var greetingKeywords = locale.MustCompleteList("greetingKeywords", locale.List{
	locale.French:  {"bonjour", "salut", "bonsoir", "bonne nuit", "hello", "hi"},
	locale.English: {"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
	locale.Arabic:  {"مرحبا", "أهلا", "السلام عليكم"},
})

var helpKeywords = locale.MustCompleteList("helpKeywords", locale.List{
	locale.French:  {"aide", "help"},
	locale.English: {"help"},
	locale.Arabic:  {"مساعدة", "help"},
})

var thanksKeywords = locale.MustCompleteList("thanksKeywords", locale.List{
	locale.French:  {"merci", "thank"},
	locale.English: {"thank"},
	locale.Arabic:  {"شكر", "thank"},
})

var questionWords = locale.MustCompleteList("questionWords", locale.List{
	locale.French:  {"quoi", "comment", "pourquoi", "quand", "où", "qui", "quel", "quelle", "combien"},
	locale.English: {"what", "how", "why", "when", "where", "who", "which", "how many"},
	locale.Arabic:  {"ماذا", "كيف", "لماذا", "متى", "أين", "من"},
})

var helpReplies = locale.MustComplete("helpReplies", locale.Table{
	locale.French:  "Je suis là pour vous aider ! Posez-moi vos questions et je ferai de mon mieux pour y répondre.",
	locale.English: "I'm here to help! Ask me your questions and I'll do my best to answer them.",
	locale.Arabic:  "أنا هنا لمساعدتك! اطرح علي أسئلتك وسأبذل قصارى جهدي للإجابة عليها.",
})

var thanksReplies = locale.MustComplete("thanksReplies", locale.Table{
	locale.French:  "De rien ! N'hésitez pas si vous avez d'autres questions.",
	locale.English: "You're welcome! Feel free to ask if you have other questions.",
	locale.Arabic:  "عفوًا! لا تتردد في السؤال إذا كان لديك أسئلة أخرى.",
})

var imageReplies = locale.MustComplete("imageReplies", locale.Table{
	locale.French:  "Basé sur l'image que vous avez fournie, je peux vous dire que c'est une image intéressante. Comment puis-je vous aider davantage avec cette image ?",
	locale.English: "Based on the image you provided, I can tell you that it's an interesting image. How can I help you further with this image?",
	locale.Arabic:  "بناءً على الصورة التي قدمتها، يمكنني أن أخبرك أنها صورة مثيرة للاهتمام. كيف يمكنني مساعدتك أكثر مع هذه الصورة؟",
})

var questionTemplates = locale.MustComplete("questionTemplates", locale.Table{
	locale.French:  "Excellente question ! Basé sur votre demande '%s', je peux vous dire que c'est un sujet intéressant. Pourriez-vous être plus spécifique pour que je puisse vous donner une réponse plus précise ?",
	locale.English: "Great question! Based on your request '%s', I can tell you that it's an interesting topic. Could you be more specific so I can give you a more precise answer?",
	locale.Arabic:  "سؤال رائع! بناءً على طلبك '%s'، يمكنني أن أخبرك أنه موضوع مثير للاهتمام. هل يمكنك أن تكون أكثر تحديدًا حتى أتمكن من إعطائك إجابة أكثر دقة؟",
})

var statementTemplates = locale.MustComplete("statementTemplates", locale.Table{
	locale.French:  "Je comprends que vous dites '%s'. Pouvez-vous me donner plus de détails ou poser une question spécifique ?",
	locale.English: "I understand you're saying '%s'. Can you give me more details or ask a specific question?",
	locale.Arabic:  "أفهم أنك تقول '%s'. هل يمكنك إعطائي المزيد من التفاصيل أو طرح سؤال محدد؟",
})

func randomChoice(set []string) string {
	return set[rand.Intn(len(set))]
}

// EmptyMessageReply returns a localized "please enter a message" prompt,
// picked at random from the fixed per-locale set.
func EmptyMessageReply(loc locale.Locale) string {
	return randomChoice(emptyMessageResponses.Get(loc))
}

// ImageContext synthesizes the description string prepended to fallback
// replies when an image accompanies the message.
func ImageContext(analysis ImageAnalysis) string {
	var context string
	if analysis.HasText {
		context = fmt.Sprintf("L'image contient le texte suivant: %s. ", analysis.Text)
	}
	description := analysis.Description
	if description == "" {
		description = "Image fournie"
	}
	return context + fmt.Sprintf("Description de l'image: %s. ", description)
}

// FallbackReply generates a deterministic keyword-driven reply from the
// normalized message. imageContext, when non-empty, is prepended to an
// image-oriented reply and preempts the keyword branches.
func FallbackReply(loc locale.Locale, normalized, imageContext string) string {
	if normalized == "" && imageContext == "" {
		return EmptyMessageReply(loc)
	}

	if containsAny(normalized, greetingKeywords.Get(loc)) {
		return randomChoice(greetings.Get(loc))
	}

	if imageContext != "" {
		return imageContext + imageReplies.Get(loc)
	}

	if containsAny(normalized, helpKeywords.Get(loc)) {
		return helpReplies.Get(loc)
	}

	if containsAny(normalized, thanksKeywords.Get(loc)) {
		return thanksReplies.Get(loc)
	}

	if containsAny(normalized, questionWords.Get(loc)) {
		return fmt.Sprintf(questionTemplates.Get(loc), normalized)
	}

	return fmt.Sprintf(statementTemplates.Get(loc), normalized)
}
