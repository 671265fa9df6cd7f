package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(handler)
	client := NewClient()
	client.BaseURL = server.URL
	return client, server.Close
}

func TestSpot_Success(t *testing.T) {
	client, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "aud", r.URL.Query().Get("vs_currencies"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"aud":152345.67}}`))
	})
	defer done()

	price, err := client.Spot(context.Background(), "Bitcoin", "AUD")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromFloat(152345.67)), "got %s", price.String())
}

func TestSpot_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
		{
			name: "missing pair",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ethereum":{"usd":1}}`))
			},
		},
		{
			name: "non-positive quote",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"bitcoin":{"aud":0}}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, done := testClient(tt.handler)
			defer done()
			_, err := client.Spot(context.Background(), "bitcoin", "aud")
			assert.Error(t, err)
		})
	}
}

func TestSpotOrFallback(t *testing.T) {
	fallback := decimal.NewFromInt(150000)

	live, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{"aud":160000}}`))
	})
	defer done()
	price, used := live.SpotOrFallback(context.Background(), "bitcoin", "aud", fallback)
	assert.True(t, used)
	assert.True(t, price.Equal(decimal.NewFromInt(160000)))

	down, doneDown := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer doneDown()
	price, used = down.SpotOrFallback(context.Background(), "bitcoin", "aud", fallback)
	assert.False(t, used)
	assert.True(t, price.Equal(fallback))
}
