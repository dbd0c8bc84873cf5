package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromUploadURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "well-formed delivery URL",
			url:     "https://host/demo/image/upload/v123/reports/abc123.jpg",
			wantKey: "reports/abc123",
			wantOK:  true,
		},
		{
			name:    "nested key",
			url:     "https://host/demo/image/upload/v1/reports/2024/abc.png",
			wantKey: "reports/2024/abc",
			wantOK:  true,
		},
		{
			name:    "no upload segment",
			url:     "https://host/demo/image/v123/reports/abc123.jpg",
			wantKey: "",
			wantOK:  false,
		},
		{
			name:    "no file extension",
			url:     "https://host/demo/image/upload/v123/reports/abc123",
			wantKey: "reports/abc123",
			wantOK:  true,
		},
		{
			name:    "dot only in a directory segment",
			url:     "https://host/demo/image/upload/v123/archive.old/abc",
			wantKey: "archive.old/abc",
			wantOK:  true,
		},
		{
			name:    "upload is the final segment",
			url:     "https://host/demo/image/upload",
			wantKey: "",
			wantOK:  true,
		},
		{
			name:    "version is the final segment",
			url:     "https://host/demo/image/upload/v123",
			wantKey: "",
			wantOK:  true,
		},
		{
			name:    "first upload segment wins",
			url:     "https://host/upload/v1/upload/abc.jpg",
			wantKey: "upload/abc",
			wantOK:  true,
		},
		{
			name:    "empty input",
			url:     "",
			wantKey: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := KeyFromUploadURL(tt.url)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMinioStorageKeyFromURL(t *testing.T) {
	s := &MinioStorage{publicBase: "http://localhost:9000/reports"}

	t.Run("self-issued URL round-trips exactly", func(t *testing.T) {
		url := s.PublicURL("reports/abc123.jpg")
		assert.Equal(t, "reports/abc123.jpg", s.KeyFromURL(url))
	})

	t.Run("foreign delivery URL uses the upload form", func(t *testing.T) {
		assert.Equal(t, "reports/abc123",
			s.KeyFromURL("https://cdn.example.com/demo/image/upload/v123/reports/abc123.jpg"))
	})

	t.Run("unmappable URL yields empty key", func(t *testing.T) {
		assert.Equal(t, "", s.KeyFromURL("https://elsewhere.example.com/files/abc123.jpg"))
	})
}
