package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullPriceTicker(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/api/v2/tickers/WETH", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("ts"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"provider":"test","price":"2000.5"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	tickers := NewTickerService(srv.URL + "/")

	ticker, err := tickers.PullPriceTicker(ctx, "WETH", time.Now())
	require.Nil(t, err)
	assert.Equal(t, "WETH", ticker.Symbol)
	assert.Equal(t, "2000.5", ticker.Price.String())

	cached := CacheTickers(tickers, time.Minute)
	for i := 0; i < 3; i++ {
		ticker, err = cached.PullPriceTicker(ctx, "WETH", time.Now())
		require.Nil(t, err)
		assert.Equal(t, "2000.5", ticker.Price.String())
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestPullPriceTickerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewTickerService(srv.URL).PullPriceTicker(context.Background(), "WETH", time.Now())
	assert.NotNil(t, err)
}
