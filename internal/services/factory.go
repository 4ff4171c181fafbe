package services

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"alfredoptarigan/cv-screener/internal/config"
	"alfredoptarigan/cv-screener/internal/models"
)

func NewObjectStorage(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocalStorage(cfg.UploadPath, cfg.PublicURL)
	case "s3":
		return NewS3Storage(ctx, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Bucket, cfg.PublicURL, cfg.UseSSL)
	}
	return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
}

func NewLLM(ctx context.Context, cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case "gateway", "":
		return NewGatewayLLM(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiLLM(ctx, cfg.APIKey, cfg.Model)
	}
	return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
}

// NewNotifier fans events out to the configured webhooks and, when conn is
// not nil, to the message broker.
func NewNotifier(cfg *config.Config, conn *amqp.Connection) (Notifier, error) {
	notifiers := []Notifier{
		NewWebhookNotifier(map[models.EventType]string{
			models.EventCVUploaded:        cfg.Webhooks.UploadURL,
			models.EventSelectionFinished: cfg.Webhooks.SelectionURL,
			models.EventScreeningStarted:  cfg.Webhooks.ScreeningURL,
		}, cfg.Webhooks.Timeout),
	}

	if conn != nil {
		broker, err := NewAMQPNotifier(conn, cfg.RabbitMQ.Exchange, cfg.Webhooks.Timeout)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, broker)
	}

	return NewMultiNotifier(notifiers...), nil
}
