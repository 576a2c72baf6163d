package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Forum/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewUploadService(&config.Config{Forum: &config.Forum{
		ImageDir:        dir,
		UploadURLPrefix: "/yvr/upload",
	}}, nil)

	t.Run("stored under two level path", func(t *testing.T) {
		data := []byte("png bytes")
		res, err := s.Upload(ctx, 1, bytes.NewReader(data), int64(len(data)))
		require.NoError(t, err)
		assert.True(t, res.Success)
		require.True(t, strings.HasPrefix(res.Url, "/yvr/upload/"))

		rel := strings.TrimPrefix(res.Url, "/yvr/upload/")
		parts := strings.Split(rel, "/")
		require.Len(t, parts, 2)
		assert.Len(t, parts[0], 2)
		assert.Len(t, parts[1], 30)

		saved, err := os.ReadFile(filepath.Join(dir, parts[0], parts[1]))
		require.NoError(t, err)
		assert.Equal(t, data, saved)
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := s.Upload(ctx, 0, strings.NewReader("x"), 1)
		assert.ErrorIs(t, err, ErrNotLogin)

		_, err = s.Upload(ctx, 1, strings.NewReader(""), 0)
		assert.ErrorIs(t, err, ErrEmptyFile)

		_, err = s.Upload(ctx, 1, strings.NewReader("x"), MaxUploadSize+1)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("actual size over limit", func(t *testing.T) {
		big := bytes.NewReader(make([]byte, MaxUploadSize+10))
		_, err := s.Upload(ctx, 1, big, -1)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})
}
