package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveExistsDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "avatars/u1_a.png", strings.NewReader("png-bytes"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "u1_a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	ok, err := s.Exists(ctx, "avatars/u1_a.png")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete(ctx, "avatars/u1_a.png"))
	ok, err = s.Exists(ctx, "avatars/u1_a.png")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, "avatars/u1_a.png"))
}

func TestLocalStorage_StaysInsideBasePath(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewLocalStorage(Config{BasePath: filepath.Join(dir, "public")})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "public", "escape.txt"))
	assert.NoError(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()

	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	url, err := s.GetURL(ctx, "avatars/u1_a.png")
	require.NoError(t, err)
	assert.Equal(t, "/avatars/u1_a.png", url)

	s, err = NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "http://localhost:3000/"})
	require.NoError(t, err)
	url, err = s.GetURL(ctx, "avatars/u1_a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/avatars/u1_a.png", url)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(context.Background(), Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestS3BaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", s3BaseURL(Config{BaseURL: "https://cdn.example.com/"}, "eu-west-1"))
	assert.Equal(t, "http://minio:9000/avatars", s3BaseURL(Config{Endpoint: "http://minio:9000", Bucket: "avatars"}, "us-east-1"))
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com", s3BaseURL(Config{Bucket: "b"}, "eu-west-1"))
}
