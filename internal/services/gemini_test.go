package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestTruncateMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"short untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long truncated", "hello world", 5, "hello"},
		{"multibyte safe", "ééééé", 3, "ééé"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateMessage(tc.input, tc.limit); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestBackendFault_Bounded(t *testing.T) {
	err := backendFault(errors.New(strings.Repeat("a", 500)))

	be, ok := err.(*BackendError)
	if !ok {
		t.Fatalf("Expected a *BackendError, got %T", err)
	}
	if !strings.HasPrefix(be.Message, "a") {
		t.Fatalf("Unexpected fault message: %q", be.Message)
	}
	if len([]rune(be.Message)) != faultMessageLimit {
		t.Errorf("Expected %d runes, got %d", faultMessageLimit, len([]rune(be.Message)))
	}
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"png header", []byte("\x89PNG\r\n\x1a\n"), "png"},
		{"jpeg header", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "jpeg"},
		{"gif header", []byte("GIF89a"), "gif"},
		{"unknown defaults to jpeg", []byte("not an image"), "jpeg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := imageFormat(tc.data); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Hello "), genai.Text("world")},
				},
			},
		},
	}

	if got := extractText(resp); got != "Hello world" {
		t.Errorf("Expected %q, got %q", "Hello world", got)
	}
}

func TestExtractText_EmptyCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	if got := extractText(resp); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestGatewayStateString(t *testing.T) {
	tests := []struct {
		state    GatewayState
		expected string
	}{
		{GatewayUninitialized, "uninitialized"},
		{GatewayReady, "ready"},
		{GatewayFailed, "failed"},
	}

	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("Expected %q, got %q", tc.expected, got)
		}
	}
}
