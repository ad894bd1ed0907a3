package render

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dsc/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapResponse(t *testing.T) {
	h := WrapResponse(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSON(w, H{"symbol": "WETH"})
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"symbol":"WETH"}}`, w.Body.String())
}

func TestError(t *testing.T) {
	h := WrapResponse(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Error(w, fmt.Errorf("%w: 0.5", core.ErrBrokenHealthFactor))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)

	var resp errorResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int(core.ErrBrokenHealthFactor), resp.Code)
	assert.Equal(t, "health factor is broken: 0.5", resp.Msg)
}
