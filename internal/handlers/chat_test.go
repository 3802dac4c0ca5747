package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func TestTitleFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"short content kept", "Bonjour", "Bonjour"},
		{"whitespace trimmed", "  hi  ", "hi"},
		{"empty stays empty", "   ", ""},
		{"long content truncated", strings.Repeat("a", 80), strings.Repeat("a", 50)},
		{"multibyte truncation", strings.Repeat("é", 80), strings.Repeat("é", 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := titleFromContent(tc.content); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestInStorage(t *testing.T) {
	storage := filepath.Join("var", "uploads")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"inside storage", filepath.Join("var", "uploads", "img.png"), true},
		{"nested inside", filepath.Join("var", "uploads", "a", "img.png"), true},
		{"outside storage", filepath.Join("var", "other", "img.png"), false},
		{"parent escape", filepath.Join("var", "uploads", "..", "secret"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := inStorage(storage, tc.path); got != tc.expected {
				t.Errorf("inStorage(%q, %q): expected %v, got %v", storage, tc.path, tc.expected, got)
			}
		})
	}
}

func TestChatRequest_MultipartParsing(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("content", "Bonjour tout le monde")
	writer.WriteField("conversation_id", "6f1e1cde-18a4-4c45-9a3b-2f0a4b6e7c8d")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}

	if got := req.FormValue("content"); got != "Bonjour tout le monde" {
		t.Errorf("Expected content field, got %q", got)
	}
	if got := req.FormValue("conversation_id"); got != "6f1e1cde-18a4-4c45-9a3b-2f0a4b6e7c8d" {
		t.Errorf("Expected conversation_id field, got %q", got)
	}

	if _, _, err := req.FormFile("image"); err != http.ErrMissingFile {
		t.Errorf("Expected ErrMissingFile for absent image, got %v", err)
	}
}
