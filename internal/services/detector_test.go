package services

import (
	"testing"

	"minichat-backend/internal/locale"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected locale.Locale
	}{
		{"french accents", "Bonjour, comment ça va?", locale.French},
		{"french keyword no accent", "merci beaucoup", locale.French},
		{"arabic script", "مرحبا", locale.Arabic},
		{"arabic wins over other content", "hello مرحبا bonjour", locale.Arabic},
		{"arabic transliteration", "inshallah we meet", locale.Arabic},
		{"transliteration beats french accent", "salam ça va", locale.Arabic},
		{"plain english", "hello there", locale.English},
		{"empty defaults to english", "", locale.English},
		{"numbers default to english", "12345", locale.English},
		{"uppercase french keyword", "BONJOUR tout le monde", locale.French},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.input); got != tc.expected {
				t.Errorf("DetectLanguage(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
		})
	}
}

func TestDetectLanguage_Total(t *testing.T) {
	// Every input maps to exactly one of the three locales.
	inputs := []string{"", "!!!", "ñ", "日本語", "mixed text 123", "\n\t"}

	for _, input := range inputs {
		got := DetectLanguage(input)
		if got != locale.French && got != locale.English && got != locale.Arabic {
			t.Errorf("DetectLanguage(%q) returned unknown locale %q", input, got)
		}
	}
}
