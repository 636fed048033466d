package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator calls a Gemini model through the genai SDK
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a client for the given API key and model
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrUpstreamUnavailable)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends one prompt and returns the concatenated text parts
func (g *GeminiGenerator) Generate(ctx context.Context, req *Request) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(req.Temperature)
	if req.SystemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}
	}
	if req.JSON {
		m.ResponseMIMEType = "application/json"
	}

	var resp *genai.GenerateContentResponse
	var err error
	if len(req.History) > 0 {
		cs := m.StartChat()
		cs.History = historyContents(req.History)
		resp, err = cs.SendMessage(ctx, genai.Text(req.UserPrompt))
	} else {
		resp, err = m.GenerateContent(ctx, genai.Text(req.UserPrompt))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUnparsableOutput)
	}
	return text, nil
}

// Close releases the underlying client
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func historyContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, &genai.Content{
			Role:  t.Role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return contents
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		// first candidate with content wins
		if b.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
