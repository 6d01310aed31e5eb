package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertInfo(t *testing.T) {
	c := New()

	t.Run("defaults when absent", func(t *testing.T) {
		got := c.convertInfo(map[string]any{})
		assert.Equal(t, map[string]any{"title": "API", "version": "1.0.0"}, got)
	})

	t.Run("optional fields copied verbatim", func(t *testing.T) {
		got := c.convertInfo(map[string]any{
			"info": map[string]any{
				"title":          "Wallet API",
				"version":        "2.3.1",
				"description":    "KYC and wallet operations",
				"termsOfService": "https://example.com/terms",
				"contact":        map[string]any{"email": "api@example.com"},
				"license":        map[string]any{"name": "MIT"},
			},
		})

		assert.Equal(t, "Wallet API", got["title"])
		assert.Equal(t, "2.3.1", got["version"])
		assert.Equal(t, "KYC and wallet operations", got["description"])
		assert.Equal(t, "https://example.com/terms", got["termsOfService"])
		assert.Equal(t, map[string]any{"email": "api@example.com"}, got["contact"])
		assert.Equal(t, map[string]any{"name": "MIT"}, got["license"])
	})

	t.Run("missing optional fields omitted", func(t *testing.T) {
		got := c.convertInfo(map[string]any{
			"info": map[string]any{"title": "Bare"},
		})
		assert.Equal(t, map[string]any{"title": "Bare", "version": "1.0.0"}, got)
	})
}

func TestConvertServers(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		doc  map[string]any
		want []any
	}{
		{
			name: "modern servers copied through",
			doc: map[string]any{
				"servers": []any{
					map[string]any{
						"url":         "https://api.example.com/{version}",
						"description": "production",
						"variables":   map[string]any{"version": map[string]any{"default": "v1"}},
					},
				},
			},
			want: []any{
				map[string]any{
					"url":         "https://api.example.com/{version}",
					"description": "production",
					"variables":   map[string]any{"version": map[string]any{"default": "v1"}},
				},
			},
		},
		{
			name: "legacy host basePath schemes synthesized",
			doc: map[string]any{
				"host":     "api.example.com",
				"basePath": "/v1",
				"schemes":  []any{"https"},
			},
			want: []any{map[string]any{"url": "https://api.example.com/v1"}},
		},
		{
			name: "first scheme wins",
			doc: map[string]any{
				"host":    "api.example.com",
				"schemes": []any{"http", "https"},
			},
			want: []any{map[string]any{"url": "http://api.example.com"}},
		},
		{
			name: "scheme defaults to https",
			doc: map[string]any{
				"host": "api.example.com",
			},
			want: []any{map[string]any{"url": "https://api.example.com"}},
		},
		{
			name: "host defaults to localhost when only basePath present",
			doc: map[string]any{
				"basePath": "/v2",
			},
			want: []any{map[string]any{"url": "https://localhost/v2"}},
		},
		{
			name: "placeholder when no server information at all",
			doc:  map[string]any{},
			want: []any{map[string]any{"url": "https://localhost"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &Result{}
			assert.Equal(t, tt.want, c.convertServers(tt.doc, result))
		})
	}
}

func TestConvertServersExtraEntryFieldsDropped(t *testing.T) {
	c := New()
	result := &Result{}

	got := c.convertServers(map[string]any{
		"servers": []any{
			map[string]any{"url": "https://api.example.com", "unknown": "dropped"},
		},
	}, result)

	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"url": "https://api.example.com"}, got[0])
}
