// Package remix sends a snapshot of the wheel to a generative image service
// and keeps the returned artwork.
package remix

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash-image"

// ImageEditor transforms a PNG image according to a text instruction.
type ImageEditor interface {
	Edit(ctx context.Context, image []byte, prompt string) ([]byte, error)
}

// GeminiEditor is an ImageEditor backed by the Gemini API.
type GeminiEditor struct {
	client *genai.Client
	model  string
}

// NewGeminiEditor builds an editor for the given key and model.
func NewGeminiEditor(ctx context.Context, apiKey, model string) (*GeminiEditor, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiEditor{client: client, model: model}, nil
}

// Model returns the model name requests are sent to.
func (e *GeminiEditor) Model() string {
	return e.model
}

// Edit sends the image and instruction in one user turn and returns the first
// image part of the reply. A reply without an image yields nil, nil.
func (e *GeminiEditor) Edit(ctx context.Context, image []byte, prompt string) ([]byte, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, "image/png"),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	return firstImage(resp), nil
}

func firstImage(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
