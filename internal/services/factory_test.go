package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-screener/internal/config"
)

func TestNewObjectStorage(t *testing.T) {
	storage, err := NewObjectStorage(context.Background(), config.StorageConfig{
		Driver:     "local",
		UploadPath: t.TempDir(),
		PublicURL:  "http://localhost:3000/files",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/files/a/b.pdf", storage.PublicURL("a/b.pdf"))

	_, err = NewObjectStorage(context.Background(), config.StorageConfig{Driver: "ftp"})
	assert.EqualError(t, err, "unknown storage driver: ftp")
}

func TestNewLLM(t *testing.T) {
	llm, err := NewLLM(context.Background(), config.LLMConfig{
		Provider: "gateway",
		BaseURL:  "http://localhost:1/v1/",
		Model:    "test-model",
	})
	require.NoError(t, err)
	assert.NotNil(t, llm)

	_, err = NewLLM(context.Background(), config.LLMConfig{Provider: "carrier-pigeon"})
	assert.EqualError(t, err, "unknown llm provider: carrier-pigeon")
}

func TestNewNotifier_WithoutBroker(t *testing.T) {
	cfg := config.Load()
	notifier, err := NewNotifier(cfg, nil)
	require.NoError(t, err)
	assert.Len(t, notifier.(multiNotifier), 1)
}
