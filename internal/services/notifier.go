package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	amqp "github.com/rabbitmq/amqp091-go"

	"alfredoptarigan/cv-screener/internal/models"
)

// Notifier delivers best-effort events to workflow automation. Notify logs
// and counts delivery failures and never reports them to the caller.
//
//go:generate mockgen -source=./notifier.go -destination=./mocks/notifier.mock.go -package=svcmocks Notifier
type Notifier interface {
	Notify(ctx context.Context, event models.Event)
}

type nopNotifier struct{}

func NewNopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) Notify(context.Context, models.Event) {}

type multiNotifier []Notifier

// NewMultiNotifier sends every event to each of the given notifiers in order.
func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Notify(ctx context.Context, event models.Event) {
	for _, n := range m {
		n.Notify(ctx, event)
	}
}

type webhookNotifier struct {
	urls    map[models.EventType]string
	timeout time.Duration
}

// NewWebhookNotifier posts the event payload as JSON to the URL registered
// for its type. Event types without a URL are skipped.
func NewWebhookNotifier(urls map[models.EventType]string, timeout time.Duration) Notifier {
	return &webhookNotifier{
		urls:    urls,
		timeout: timeout,
	}
}

func (w *webhookNotifier) Notify(ctx context.Context, event models.Event) {
	url := w.urls[event.Type]
	if url == "" {
		return
	}

	if err := w.post(ctx, url, event.Payload); err != nil {
		notificationFailures.WithLabelValues("webhook", string(event.Type)).Inc()
		log.Warnf("⚠️ Webhook %s failed (ignored): %v", event.Type, err)
		return
	}

	log.Debugf("📨 Webhook %s delivered", event.Type)
}

func (w *webhookNotifier) post(ctx context.Context, url string, payload any) error {
	timeout := w.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return fmt.Errorf("deadline exceeded before sending")
	}

	agent := fiber.Post(url).JSON(payload).Timeout(timeout)
	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("failed to send webhook: %w", errs[0])
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("webhook responded with status %d", code)
	}
	return nil
}

type amqpNotifier struct {
	channel  *amqp.Channel
	exchange string
	timeout  time.Duration
}

// NewAMQPNotifier publishes events to a durable topic exchange with the
// routing key "cv.<event type>".
func NewAMQPNotifier(conn *amqp.Connection, exchange string, timeout time.Duration) (Notifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &amqpNotifier{
		channel:  ch,
		exchange: exchange,
		timeout:  timeout,
	}, nil
}

func RoutingKey(t models.EventType) string {
	return "cv." + string(t)
}

func (a *amqpNotifier) Notify(ctx context.Context, event models.Event) {
	body, err := json.Marshal(event.Payload)
	if err != nil {
		log.Errorf("❌ Failed to encode %s event: %v", event.Type, err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	err = a.channel.PublishWithContext(pubCtx,
		a.exchange,
		RoutingKey(event.Type),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   event.OccurredAt,
			Type:        string(event.Type),
			Body:        body,
		},
	)
	if err != nil {
		notificationFailures.WithLabelValues("amqp", string(event.Type)).Inc()
		log.Warnf("⚠️ Publishing %s failed (ignored): %v", event.Type, err)
	}
}
