package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPingHandler(t *testing.T) {
	t.Run("Default ping handler", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("taxi-client")
		err := handler(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response BuildInfo
		err = json.Unmarshal(rec.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "taxi-client", response.ServiceName)
		assert.Equal(t, runtime.Version(), response.GoVersion)
		assert.NotEmpty(t, response.Hostname)
		assert.False(t, response.ServerTime.IsZero())
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "taxi-client")

	// Test /ping endpoint
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var buildInfo BuildInfo
	err := json.Unmarshal(rec.Body.Bytes(), &buildInfo)
	assert.NoError(t, err)
	assert.Equal(t, "taxi-client", buildInfo.ServiceName)

	// Test /health endpoint
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
