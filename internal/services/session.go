package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"alfredoptarigan/cv-screener/internal/models"
)

//go:generate mockgen -source=./session.go -destination=./mocks/session.mock.go -package=svcmocks IdentityProvider SessionStore SessionService
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*models.Identity, error)
}

type SessionStore interface {
	Save(ctx context.Context, token string, session *models.Session, ttl time.Duration) error
	Load(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

type SessionService interface {
	Login(ctx context.Context, token string) (*models.Session, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}

type sessionService struct {
	identity IdentityProvider
	store    SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(identity IdentityProvider, store SessionStore, ttl time.Duration) SessionService {
	return &sessionService{
		identity: identity,
		store:    store,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *sessionService) Login(ctx context.Context, token string) (*models.Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}

	id, err := s.identity.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.Session{
		UserID:    id.UserID,
		Email:     id.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, token, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Infof("🔐 Session created for user %s", session.UserID)
	return session, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	return s.store.Load(ctx, token)
}

func (s *sessionService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrUnauthorized
	}
	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type redisSessionStore struct {
	client redis.Cmdable
}

func NewRedisSessionStore(client redis.Cmdable) SessionStore {
	return &redisSessionStore{client: client}
}

// key never contains the raw token.
func (r *redisSessionStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "cv-screener:session:" + hex.EncodeToString(sum[:])
}

func (r *redisSessionStore) Save(ctx context.Context, token string, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(token), data, ttl).Err()
}

func (r *redisSessionStore) Load(ctx context.Context, token string) (*models.Session, error) {
	data, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (r *redisSessionStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

type supabaseIdentity struct {
	baseURL string
	anonKey string
	timeout time.Duration
}

// NewSupabaseIdentity verifies access tokens against the BaaS auth API.
func NewSupabaseIdentity(baseURL, anonKey string, timeout time.Duration) IdentityProvider {
	return &supabaseIdentity{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		timeout: timeout,
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (s *supabaseIdentity) Verify(_ context.Context, token string) (*models.Identity, error) {
	code, body, errs := fiber.Get(s.baseURL+"/auth/v1/user").
		Set(fiber.HeaderAuthorization, "Bearer "+token).
		Set("apikey", s.anonKey).
		Timeout(s.timeout).
		Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to reach auth provider: %w", errs[0])
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, ErrUnauthorized
	case code != http.StatusOK:
		return nil, fmt.Errorf("auth provider responded with status %d", code)
	}

	var user supabaseUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode auth user: %w", err)
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth provider returned invalid user id: %w", err)
	}

	return &models.Identity{UserID: userID, Email: user.Email}, nil
}
