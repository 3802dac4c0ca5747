package services

import (
	"fmt"
	"strings"

	"minichat-backend/internal/locale"
	"minichat-backend/internal/models"
)

// historyWindow is the number of trailing turns included in a prompt
// (3 user/assistant exchanges). Older turns are dropped, not summarized.
const historyWindow = 6

var systemPrompts = locale.MustComplete("systemPrompts", locale.Table{
	locale.French: `Tu es un assistant IA intelligent et très utile. Tu dois:
- Répondre à TOUTES les questions de manière directe et précise
- Comprendre le contexte et donner des réponses complètes
- Si tu ne connais pas quelque chose, dis-le honnêtement
- Sois naturel, amical et professionnel
- Réponds toujours en français`,
	locale.English: `You are an intelligent and very helpful AI assistant. You must:
- Answer ALL questions directly and accurately
- Understand context and provide complete answers
- If you don't know something, say so honestly
- Be natural, friendly, and professional
- Always respond in English`,
	locale.Arabic: `أنت مساعد ذكي ومفيد جدًا. يجب عليك:
- الإجابة على جميع الأسئلة بشكل مباشر ودقيق
- فهم السياق وإعطاء إجابات كاملة
- إذا كنت لا تعرف شيئًا، قل ذلك بصراحة
- كن طبيعيًا وودودًا ومهنيًا
- أجب دائمًا بالعربية`,
})

var historyHeaders = locale.MustComplete("historyHeaders", locale.Table{
	locale.French:  "Historique de la conversation:",
	locale.English: "Conversation history:",
	locale.Arabic:  "تاريخ المحادثة:",
})

var userLabels = locale.MustComplete("userLabels", locale.Table{
	locale.French:  "Utilisateur",
	locale.English: "User",
	locale.Arabic:  "المستخدم",
})

var assistantLabels = locale.MustComplete("assistantLabels", locale.Table{
	locale.French:  "Assistant",
	locale.English: "Assistant",
	locale.Arabic:  "المساعد",
})

var imageAnalysisPrompts = locale.MustComplete("imageAnalysisPrompts", locale.Table{
	locale.French:  "Analyse cette image et réponds à cette question en français: %s",
	locale.English: "Analyze this image and answer this question in English: %s",
	locale.Arabic:  "حلل هذه الصورة وأجب على هذا السؤال بالعربية: %s",
})

var imageDescribePrompts = locale.MustComplete("imageDescribePrompts", locale.Table{
	locale.French:  "Analyse cette image en détail et décris tout ce que tu vois.",
	locale.English: "Analyze this image in detail and describe everything you see.",
	locale.Arabic:  "حلل هذه الصورة بالتفصيل ووصف كل ما تراه.",
})

// BuildImagePrompt wraps the user question in a localized analysis
// instruction for the vision path. A blank question becomes a plain
// describe-everything instruction.
func BuildImagePrompt(loc locale.Locale, userMessage string) string {
	if strings.TrimSpace(userMessage) == "" {
		return imageDescribePrompts.Get(loc)
	}
	return fmt.Sprintf(imageAnalysisPrompts.Get(loc), userMessage)
}

func roleLabel(loc locale.Locale, role string) string {
	if role == models.RoleAssistant {
		return assistantLabels.Get(loc)
	}
	return userLabels.Get(loc)
}

// BuildPrompt assembles the localized system instruction, the trailing
// history window and the current user turn into a single model-ready prompt,
// ending with an empty assistant label to prompt continuation.
func BuildPrompt(loc locale.Locale, history []models.ChatMessage, userMessage string) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var context strings.Builder
	for _, msg := range history {
		context.WriteString(roleLabel(loc, msg.Role))
		context.WriteString(": ")
		context.WriteString(msg.Content)
		context.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(systemPrompts.Get(loc))
	b.WriteString("\n\n")
	if context.Len() > 0 {
		b.WriteString(historyHeaders.Get(loc))
		b.WriteString("\n")
		b.WriteString(context.String())
		b.WriteString("\n")
	}
	b.WriteString(userLabels.Get(loc))
	b.WriteString(": ")
	b.WriteString(userMessage)
	b.WriteString("\n")
	b.WriteString(assistantLabels.Get(loc))
	b.WriteString(":")

	return b.String()
}
