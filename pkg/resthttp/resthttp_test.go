package resthttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, "abc", r.Header.Get(headerKeyRequestID))
		_, _ = w.Write([]byte(`{"pong":true}`))
	}))
	defer srv.Close()

	var body struct {
		Pong bool `json:"pong"`
	}
	require.Nil(t, New(srv.URL+"/").Get(context.Background(), "abc", "/ping", &body))
	assert.True(t, body.Pong)
}

func TestGetRetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.Nil(t, New(srv.URL).Get(context.Background(), "abc", "/", nil))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGetClientError(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "abc", "/", nil)
	assert.NotNil(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
