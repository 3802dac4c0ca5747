package services

import (
	"strings"
	"testing"

	"minichat-backend/internal/locale"
)

func memberOf(set []string, s string) bool {
	for _, entry := range set {
		if entry == s {
			return true
		}
	}
	return false
}

func TestEmptyMessageReply_MemberOfFixedSet(t *testing.T) {
	for _, loc := range locale.All() {
		set := emptyMessageResponses.Get(loc)
		// Replies are randomly chosen, so assert membership, not equality.
		for i := 0; i < 20; i++ {
			got := EmptyMessageReply(loc)
			if !memberOf(set, got) {
				t.Fatalf("Reply %q for %q not in the fixed set", got, loc)
			}
		}
	}
}

func TestFallbackReply_Greeting(t *testing.T) {
	for i := 0; i < 20; i++ {
		got := FallbackReply(locale.English, "hello my friend", "")
		if !memberOf(greetings.Get(locale.English), got) {
			t.Fatalf("Greeting reply %q not in the fixed set", got)
		}
	}
}

func TestFallbackReply_Keywords(t *testing.T) {
	tests := []struct {
		name     string
		loc      locale.Locale
		text     string
		expected string
	}{
		{"french help", locale.French, "jai besoin daide", helpReplies.Get(locale.French)},
		{"english help", locale.English, "can you help me please", helpReplies.Get(locale.English)},
		{"french thanks", locale.French, "merci pour tout", thanksReplies.Get(locale.French)},
		{"english thanks", locale.English, "thank you so much", thanksReplies.Get(locale.English)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FallbackReply(tc.loc, tc.text, ""); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFallbackReply_QuestionVsStatement(t *testing.T) {
	question := FallbackReply(locale.English, "why is the sky blue", "")
	if !strings.Contains(question, "Great question!") || !strings.Contains(question, "'why is the sky blue'") {
		t.Errorf("Expected question frame echoing the text, got %q", question)
	}

	statement := FallbackReply(locale.English, "the sky is blue", "")
	if !strings.Contains(statement, "I understand you're saying 'the sky is blue'") {
		t.Errorf("Expected statement frame echoing the text, got %q", statement)
	}
}

func TestFallbackReply_ImageContextPrepended(t *testing.T) {
	context := "Description de l'image: Image paysage de 800x600 pixels. "

	got := FallbackReply(locale.English, "look at my picture", context)
	if !strings.HasPrefix(got, context) {
		t.Errorf("Expected reply to start with the image context, got %q", got)
	}
	if !strings.Contains(got, imageReplies.Get(locale.English)) {
		t.Errorf("Expected image reply body, got %q", got)
	}
}

func TestFallbackReply_NeverEmpty(t *testing.T) {
	inputs := []string{"", "random words here", "help", "merci", "why", "مرحبا"}

	for _, loc := range locale.All() {
		for _, input := range inputs {
			if got := FallbackReply(loc, input, ""); got == "" {
				t.Errorf("Empty fallback reply for locale %q input %q", loc, input)
			}
		}
	}
}

func TestImageContext(t *testing.T) {
	analysis := ImageAnalysis{
		Width:       800,
		Height:      600,
		Description: "Image paysage de 800x600 pixels",
	}

	got := ImageContext(analysis)
	expected := "Description de l'image: Image paysage de 800x600 pixels. "
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	analysis.HasText = true
	analysis.Text = "bon voyage"
	got = ImageContext(analysis)
	if !strings.HasPrefix(got, "L'image contient le texte suivant: bon voyage. ") {
		t.Errorf("Expected extracted text prefix, got %q", got)
	}
}
