package services

import (
	"strings"

	"minichat-backend/internal/locale"
)

// Arabic words commonly transliterated into Latin script.
var arabicLatinWords = []string{
	"salam", "salaam", "ahlan", "marhaba", "shukran", "afwan",
	"ma3a salama", "inshallah", "mashallah", "alhamdulillah",
	"bismillah", "assalamu", "alaikum", "waalaikum",
}

var frenchWords = []string{
	"bonjour", "salut", "merci", "comment", "pourquoi", "quand", "où",
	"comment ça va", "ça va", "très bien", "excusez-moi", "s'il vous plaît",
}

const frenchAccented = "àâäéèêëïîôùûüÿç"

// containsAny reports whether text contains any of the listed keywords as a
// substring. Matching is deliberately not word-boundary aligned: this mirrors
// the detection policy everywhere keywords are used, and a stricter matcher
// can replace it here without touching call sites.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func hasArabicRune(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

func hasFrenchAccent(text string) bool {
	return strings.ContainsAny(strings.ToLower(text), frenchAccented)
}

// DetectLanguage classifies raw input into fr, en or ar. Total and
// deterministic: first matching rule wins, English is the default.
func DetectLanguage(text string) locale.Locale {
	lower := strings.TrimSpace(strings.ToLower(text))

	if hasArabicRune(text) {
		return locale.Arabic
	}
	if containsAny(lower, arabicLatinWords) {
		return locale.Arabic
	}
	if hasFrenchAccent(text) || containsAny(lower, frenchWords) {
		return locale.French
	}
	return locale.English
}
