package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=./storage.go -destination=./mocks/storage.mock.go -package=svcmocks ObjectStorage
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

var ErrObjectNotFound = errors.New("object not found")

// BuildObjectKey returns the storage key of an upload:
// {ownerId}/{uploadTimestampMillis}-{originalFileName}.
func BuildObjectKey(ownerID string, uploadedAtMillis int64, fileName string) string {
	return fmt.Sprintf("%s/%d-%s", ownerID, uploadedAtMillis, fileName)
}

func publicObjectURL(baseURL, bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	base := strings.TrimRight(baseURL, "/")
	if bucket == "" {
		return fmt.Sprintf("%s/%s", base, strings.Join(segments, "/"))
	}
	return fmt.Sprintf("%s/%s/%s", base, bucket, strings.Join(segments, "/"))
}

type localStorage struct {
	uploadPath string
	publicURL  string
}

// NewLocalStorage stores objects on the local filesystem under uploadPath.
func NewLocalStorage(uploadPath, publicURL string) (ObjectStorage, error) {
	s := &localStorage{
		uploadPath: uploadPath,
		publicURL:  publicURL,
	}
	if err := s.ensureUploadDir(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *localStorage) ensureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

func (s *localStorage) objectPath(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid object key: %s", key)
	}
	return filepath.Join(s.uploadPath, clean), nil
}

func (s *localStorage) Put(_ context.Context, key string, data []byte, _ string) error {
	path, err := s.objectPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (s *localStorage) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.objectPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", key, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	path, err := s.objectPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *localStorage) PublicURL(key string) string {
	return publicObjectURL(s.publicURL, "", key)
}
