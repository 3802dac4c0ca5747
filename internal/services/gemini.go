package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Fault taxonomy of the AI gateway boundary. The responder converts every one
// of these into a localized user-facing string; none escapes to HTTP callers.
var (
	ErrAIUnavailable = errors.New("ai gateway unavailable")
	ErrEmptyResponse = errors.New("empty response from model")
)

// BackendError carries a bounded, display-safe description of a network,
// quota or format error from the generative backend.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

// faultMessageLimit bounds backend error text for safe display.
const faultMessageLimit = 150

func truncateMessage(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func backendFault(err error) error {
	return &BackendError{Message: truncateMessage(err.Error(), faultMessageLimit)}
}

// AIGateway is the capability the responder depends on: prompt in, text out.
type AIGateway interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImageResponse(ctx context.Context, prompt string, image []byte) (string, error)
}

// candidate models tried in order at construction; the first one that answers
// a liveness probe wins.
var candidateModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
}

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiService creates the Gemini client and probes for a working model.
// Construction performs blocking network round trips and may fail; callers
// treat that as "gateway unavailable" rather than a fatal error.
func NewGeminiService(ctx context.Context, apiKey string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	for _, name := range candidateModels {
		model := client.GenerativeModel(name)
		model.SetTemperature(0.3)
		model.SetTopP(0.95)

		if _, err := model.GenerateContent(ctx, genai.Text("hi")); err != nil {
			log.Printf("Gemini model %s not usable: %v", name, truncateMessage(err.Error(), 80))
			continue
		}

		log.Printf("✓ Gemini model selected: %s", name)
		return &GeminiService{client: client, model: model}, nil
	}

	client.Close()
	return nil, fmt.Errorf("no usable Gemini model among %v", candidateModels)
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// GenerateText sends a text prompt and returns the extracted reply.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", backendFault(err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateImageResponse sends a prompt plus image bytes to the vision path.
func (s *GeminiService) GenerateImageResponse(ctx context.Context, prompt string, image []byte) (string, error) {
	resp, err := s.model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(imageFormat(image), image),
	)
	if err != nil {
		return "", backendFault(err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// extractText gathers every text part across candidates. Non-text parts are
// skipped; an all-empty result means the model returned nothing usable.
func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

// imageFormat sniffs the genai image format tag ("jpeg", "png", ...) from
// the payload, defaulting to jpeg.
func imageFormat(image []byte) string {
	mime := http.DetectContentType(image)
	if format, ok := strings.CutPrefix(mime, "image/"); ok {
		return format
	}
	return "jpeg"
}

// GatewayState tracks the lifecycle of the lazily constructed gateway.
type GatewayState int

const (
	GatewayUninitialized GatewayState = iota
	GatewayReady
	GatewayFailed
)

func (s GatewayState) String() string {
	switch s {
	case GatewayReady:
		return "ready"
	case GatewayFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// GatewayProvider constructs the AI gateway at most once per process. The
// first caller pays the construction cost (including model probing); later
// callers reuse the cached gateway or the cached failure. Reset allows an
// explicit retry policy instead of silent per-request retries.
type GatewayProvider struct {
	mu        sync.Mutex
	construct func(ctx context.Context) (AIGateway, error)
	gateway   AIGateway
	err       error
	state     GatewayState
}

func NewGatewayProvider(construct func(ctx context.Context) (AIGateway, error)) *GatewayProvider {
	return &GatewayProvider{construct: construct}
}

// Get returns the gateway, constructing it on first use. A construction
// failure is cached and surfaced as ErrAIUnavailable until Reset.
func (p *GatewayProvider) Get(ctx context.Context) (AIGateway, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case GatewayReady:
		return p.gateway, nil
	case GatewayFailed:
		return nil, p.err
	}

	gateway, err := p.construct(ctx)
	if err != nil {
		log.Printf("⚠ AI gateway construction failed: %v", err)
		p.state = GatewayFailed
		p.err = fmt.Errorf("%w: %v", ErrAIUnavailable, truncateMessage(err.Error(), faultMessageLimit))
		return nil, p.err
	}

	p.state = GatewayReady
	p.gateway = gateway
	return p.gateway, nil
}

// State reports the current lifecycle state without constructing.
func (p *GatewayProvider) State() GatewayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Reset clears a cached result so the next Get reconstructs.
func (p *GatewayProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = GatewayUninitialized
	p.gateway = nil
	p.err = nil
}
