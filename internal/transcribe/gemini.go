package transcribe

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// geminiInstruction tells the model to act as a pure transcriber.
const geminiInstruction = "Transcribe the speech in this audio exactly as spoken. " +
	"Reply with the transcription only, no commentary or punctuation beyond what was spoken."

// GeminiProvider implements Provider by sending the audio inline to a
// Gemini multimodal model.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := resolveModel(cfg.Model, geminiModels)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Transcribe(ctx context.Context, req Request) (*Result, error) {
	mimeType := req.MIMEType
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	instruction := geminiInstruction
	if req.Prompt != "" {
		instruction += " Expected vocabulary: " + req.Prompt
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: req.Audio}},
				{Text: instruction},
			},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return nil, &ErrServiceUnavailable{Err: err}
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, &ErrEmptyTranscript{Model: p.model}
	}

	return &Result{
		Text:  text,
		Model: p.model,
	}, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}
