package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-screener/internal/models"
)

type httpScoringClient struct {
	url     string
	apiKey  string
	timeout time.Duration
}

// NewHTTPScoringClient calls a scoring function deployed behind url.
func NewHTTPScoringClient(url, apiKey string, timeout time.Duration) ScoringClient {
	return &httpScoringClient{
		url:     url,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

type scoringReply struct {
	Results            json.RawMessage            `json:"results"`
	ContractViolations []models.ContractViolation `json:"contractViolations"`
	Error              string                     `json:"error"`
}

func (c *httpScoringClient) Score(ctx context.Context, req models.ScoringRequest) (*models.ScoringResponse, error) {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, &ScoringError{
			Status:  http.StatusGatewayTimeout,
			Message: "Scoring deadline exceeded before sending",
			Err:     context.DeadlineExceeded,
		}
	}

	agent := fiber.Post(c.url).JSON(req).Timeout(timeout)
	if c.apiKey != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.apiKey)
		agent.Set("apikey", c.apiKey)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &ScoringError{
			Status:  http.StatusBadGateway,
			Message: "Failed to reach scoring function",
			Err:     errs[0],
		}
	}

	switch code {
	case http.StatusTooManyRequests:
		return nil, &ScoringError{Status: code, Message: msgRateLimited, Err: ErrRateLimited}
	case http.StatusPaymentRequired:
		return nil, &ScoringError{Status: code, Message: msgQuotaExhausted, Err: ErrQuotaExhausted}
	}

	var reply scoringReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, &ScoringError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("Scoring function returned an unreadable reply (status %d)", code),
			Err:     err,
		}
	}

	if code != http.StatusOK || reply.Error != "" {
		status := code
		if status == http.StatusOK {
			status = http.StatusBadGateway
		}
		message := reply.Error
		if message == "" {
			message = fmt.Sprintf("Scoring function error: %d", code)
		}
		return nil, &ScoringError{Status: status, Message: message}
	}

	results, err := DecodeResults(reply.Results)
	if err != nil {
		return nil, &ScoringError{Status: http.StatusBadGateway, Message: msgParseFailed, Err: err}
	}

	return &models.ScoringResponse{
		Results:            results,
		ContractViolations: reply.ContractViolations,
	}, nil
}
