package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"google.golang.org/genai"
)

type geminiLLM struct {
	client    *genai.Client
	modelName string
}

func NewGeminiLLM(ctx context.Context, apiKey, model string) (LLMService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiLLM{
		client:    client,
		modelName: model,
	}, nil
}

func (g *geminiLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userPrompt), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", classifyUpstreamStatus(apiErr.Code, apiErr.Message)
		}
		upstreamErrors.WithLabelValues("transport").Inc()
		log.Errorf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		upstreamErrors.WithLabelValues("empty").Inc()
		return "", errEmptyCompletion
	}

	text := resp.Text()
	if text == "" {
		upstreamErrors.WithLabelValues("empty").Inc()
		log.Warnf("⚠️ Gemini returned %d candidates without text", len(resp.Candidates))
		return "", errEmptyCompletion
	}

	log.Debug("📊 Gemini response received")
	return text, nil
}
