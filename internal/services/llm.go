package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var errEmptyCompletion = errors.New("No response from AI")

// LLMService sends one system + user prompt pair to a hosted model and
// returns the raw reply. Provider throttling is reported as ErrRateLimited and
// exhausted credits as ErrQuotaExhausted.
//
//go:generate mockgen -source=./llm.go -destination=./mocks/llm.mock.go -package=svcmocks LLMService
type LLMService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type gatewayLLM struct {
	client *openai.Client
	model  string
}

// NewGatewayLLM targets any OpenAI-compatible chat completions gateway.
func NewGatewayLLM(baseURL, apiKey, model string) LLMService {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		// failures surface to the user, who retries manually
		option.WithMaxRetries(0),
	)

	return &gatewayLLM{
		client: client,
		model:  model,
	}
}

func (g *gatewayLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		}),
		Model: openai.F(openai.ChatModel(g.model)),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", classifyUpstreamStatus(apiErr.StatusCode, apiErr.Error())
		}
		upstreamErrors.WithLabelValues("transport").Inc()
		return "", fmt.Errorf("failed to call AI gateway: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		upstreamErrors.WithLabelValues("empty").Inc()
		return "", errEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func classifyUpstreamStatus(status int, body string) error {
	switch status {
	case http.StatusTooManyRequests:
		upstreamErrors.WithLabelValues("rate_limited").Inc()
		log.Warn("⚠️ AI provider rate limit hit")
		return ErrRateLimited
	case http.StatusPaymentRequired:
		upstreamErrors.WithLabelValues("quota_exhausted").Inc()
		log.Warn("⚠️ AI provider credits exhausted")
		return ErrQuotaExhausted
	}

	upstreamErrors.WithLabelValues("status").Inc()
	log.Errorf("❌ AI provider error: %d %s", status, body)
	return &UpstreamError{StatusCode: status, Body: body}
}
