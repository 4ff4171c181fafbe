package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("5f0c6a5e-1d1e-4c43-9d0a-2d6a2b1f0c11", 1718000000123, "Jane Doe CV.pdf")
	assert.Equal(t, "5f0c6a5e-1d1e-4c43-9d0a-2d6a2b1f0c11/1718000000123-Jane Doe CV.pdf", key)
}

func TestPublicObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/cvs/owner/1-Jane%20Doe%20CV.pdf",
		publicObjectURL("https://cdn.example.com/", "cvs", "owner/1-Jane Doe CV.pdf"))
	assert.Equal(t,
		"http://localhost:8080/files/owner/1-a.pdf",
		publicObjectURL("http://localhost:8080/files", "", "owner/1-a.pdf"))
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "uploads")

	storage, err := NewLocalStorage(dir, "http://localhost:8080/files")
	require.NoError(t, err)

	key := "owner/1718000000123-cv.pdf"
	require.NoError(t, storage.Put(ctx, key, []byte("%PDF-1.4 body"), "application/pdf"))

	_, err = os.Stat(filepath.Join(dir, "owner", "1718000000123-cv.pdf"))
	require.NoError(t, err)

	data, err := storage.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 body"), data)

	assert.Equal(t, "http://localhost:8080/files/owner/1718000000123-cv.pdf", storage.PublicURL(key))

	require.NoError(t, storage.Delete(ctx, key))
	_, err = storage.Get(ctx, key)
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	// deleting twice is not an error
	assert.NoError(t, storage.Delete(ctx, key))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	for _, key := range []string{"../outside.pdf", "owner/../../outside.pdf", "/etc/passwd", ""} {
		assert.Error(t, storage.Put(ctx, key, []byte("x"), "application/pdf"), key)
	}
}
