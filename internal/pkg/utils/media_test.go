package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMediaURL(t *testing.T) {
	mediaHost := "http://localhost:8000"

	t.Run("empty path stays empty", func(t *testing.T) {
		assert.Equal(t, "", NormalizeMediaURL(mediaHost, ""))
	})

	t.Run("absolute http URL passes through", func(t *testing.T) {
		url := "http://cdn.example.com/media/profile.jpg"
		assert.Equal(t, url, NormalizeMediaURL(mediaHost, url))
	})

	t.Run("absolute https URL passes through", func(t *testing.T) {
		url := "https://cdn.example.com/media/profile.jpg"
		assert.Equal(t, url, NormalizeMediaURL(mediaHost, url))
	})

	t.Run("server-relative media path gets host prefix", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8000/media/profile.jpg", NormalizeMediaURL(mediaHost, "/media/profile.jpg"))
	})

	t.Run("bare filename gets host and media prefix", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8000/media/profile.jpg", NormalizeMediaURL(mediaHost, "profile.jpg"))
	})

	t.Run("trailing slash on host is trimmed", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8000/media/profile.jpg", NormalizeMediaURL("http://localhost:8000/", "/media/profile.jpg"))
	})

	t.Run("nested object path keeps its segments", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8000/media/blog/2024/cover.png", NormalizeMediaURL(mediaHost, "/media/blog/2024/cover.png"))
	})
}
