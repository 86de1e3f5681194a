package client

import (
	"testing"

	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, gumroad.ErrConfigRequired)
	})

	t.Run("requires host", func(t *testing.T) {
		t.Parallel()

		config := &gumroad.Config{Token: "test-token"}
		_, err := New(config)
		require.ErrorIs(t, err, gumroad.ErrHostRequired)
	})

	t.Run("requires token", func(t *testing.T) {
		t.Parallel()

		config := &gumroad.Config{Host: "api.gumroad.com"}
		_, err := New(config)
		require.ErrorIs(t, err, gumroad.ErrTokenRequired)
	})

	t.Run("creates client", func(t *testing.T) {
		t.Parallel()

		config := &gumroad.Config{
			Host:  "api.gumroad.com",
			Token: "test-token",
		}

		client, err := New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects unsupported cache type", func(t *testing.T) {
		t.Parallel()

		config := &gumroad.Config{
			Host:  "api.gumroad.com",
			Token: "test-token",
			Cache: &gumroad.CacheConfig{Type: "redis"},
		}

		_, err := New(config)
		require.ErrorIs(t, err, gumroad.ErrUnsupportedCacheType)
	})
}

func TestClient_ResourceAccessors(t *testing.T) {
	t.Parallel()

	config := &gumroad.Config{
		Host:  "api.gumroad.com",
		Token: "test-token",
	}

	client, err := New(config)
	require.NoError(t, err)

	assert.NotNil(t, client.Products())
	assert.NotNil(t, client.Sales())
	assert.NotNil(t, client.OfferCodes())
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{
			name:     "bare host",
			host:     "api.gumroad.com",
			expected: "https://api.gumroad.com",
		},
		{
			name:     "explicit https scheme",
			host:     "https://api.gumroad.com",
			expected: "https://api.gumroad.com",
		},
		{
			name:     "explicit http scheme",
			host:     "http://127.0.0.1:8080",
			expected: "http://127.0.0.1:8080",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, baseURL(testCase.host))
		})
	}
}
