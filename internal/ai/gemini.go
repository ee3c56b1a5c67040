// README: Gemini-backed classifier gateway for the intake pipeline.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// GeminiClassifier implements the four intake classifier operations on
// Google's Gemini models. Each operation is one stateless request/response
// call; failures propagate to the caller unretried.
type GeminiClassifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClassifier initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiClassifier(ctx context.Context, apiKey, modelName string) (*GeminiClassifier, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)

	// Low temperature: these are classification calls, not creative ones.
	model.SetTemperature(0.2)

	return &GeminiClassifier{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (g *GeminiClassifier) Close() {
	g.client.Close()
}

// ClassifyCategory maps free text to one label from the known category list.
// The returned string is trimmed but otherwise verbatim; it is not validated
// against the list.
func (g *GeminiClassifier) ClassifyCategory(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, categoryPrompt(text))
}

// IdentifyDomain returns the model's train/station answer as trimmed text.
// Anything other than "train" is treated downstream as not-train.
func (g *GeminiClassifier) IdentifyDomain(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, domainPrompt(text))
}

// IsGoodsRelated folds the model's yes/no answer into a boolean; any response
// other than "yes" (malformed output included) counts as false.
func (g *GeminiClassifier) IsGoodsRelated(ctx context.Context, text string) (bool, error) {
	out, err := g.generate(ctx, goodsPrompt(text))
	if err != nil {
		return false, err
	}
	return FoldYes(out), nil
}

// GenerateFollowupQuestions splits the raw generation output on line
// boundaries; each line is one question, blank lines included. The policy for
// blank questions belongs to the caller.
func (g *GeminiClassifier) GenerateFollowupQuestions(ctx context.Context, text, category string) ([]string, error) {
	out, err := g.generate(ctx, followupPrompt(text, category))
	if err != nil {
		return nil, err
	}
	return SplitQuestions(out), nil
}

func (g *GeminiClassifier) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	out := strings.TrimSpace(responseText.String())
	if out == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return out, nil
}
