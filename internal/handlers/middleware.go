package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/services"
)

const tokenLocal = "session_token"

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// RequireSession resolves the caller's session and puts it in the request's
// user context.
func RequireSession(sessions services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		session, err := sessions.Resolve(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
			}
			return writeError(c, err)
		}

		c.Locals(tokenLocal, token)
		c.SetUserContext(models.WithSession(c.UserContext(), session))
		return c.Next()
	}
}

func currentSession(c *fiber.Ctx) (*models.Session, error) {
	session, ok := models.SessionFromContext(c.UserContext())
	if !ok {
		return nil, services.ErrUnauthorized
	}
	return session, nil
}

type RateLimiterConfig struct {
	Client    redis.Cmdable
	Limit     int
	Window    time.Duration
	KeyPrefix string
	Extractor func(c *fiber.Ctx) string
}

// NewRateLimiter counts requests per client in fixed windows. When Redis is
// unavailable requests are let through. Clients are told apart by c.IP(), which
// only honours a proxy header when the app trusts the sending proxy.
func NewRateLimiter(cfg RateLimiterConfig) fiber.Handler {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:"
	}
	if cfg.Extractor == nil {
		cfg.Extractor = func(c *fiber.Ctx) string {
			return c.IP()
		}
	}

	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		id := cfg.Extractor(c)
		if id == "" {
			id = "anonymous"
		}
		key := cfg.KeyPrefix + id

		count, err := cfg.Client.Incr(ctx, key).Result()
		if err != nil {
			log.Warnf("⚠️ Rate limiter unavailable: %v", err)
			return c.Next()
		}
		if count == 1 {
			cfg.Client.Expire(ctx, key, cfg.Window)
		}

		ttl, _ := cfg.Client.TTL(ctx, key).Result()
		reset := int(ttl.Seconds())
		if reset < 0 {
			reset = 0
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Set("X-RateLimit-Reset", strconv.Itoa(reset))

		if count > int64(cfg.Limit) {
			c.Set("X-RateLimit-Remaining", "0")
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(reset))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		}

		c.Set("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-int(count)))
		return c.Next()
	}
}

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder registers the HTTP metrics. Call it once per process.
func NewMetricsBuilder() *MetricsBuilder {
	summaryVec := promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)

	counterVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (b *MetricsBuilder) Build() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		duration := time.Since(start).Seconds()
		method := c.Method()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		statusCode := fmt.Sprintf("%d", c.Response().StatusCode())

		b.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		b.counterVec.WithLabelValues(method, path, statusCode).Inc()
		return err
	}
}
