package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_ReportsStatusAndUptime(t *testing.T) {
	h := NewHealthHandler(time.Now().Add(-time.Minute), "development", false)
	rr := httptest.NewRecorder()
	h.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var s healthStatus
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&s))
	assert.Equal(t, "OK", s.Status)
	assert.Equal(t, serviceName, s.Service)
	assert.GreaterOrEqual(t, s.UptimeSeconds, 60.0)
	assert.Nil(t, s.Env)
}

func TestHealth_IncludesEnvironmentDetail(t *testing.T) {
	h := NewHealthHandler(time.Now(), "production", true)
	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var s healthStatus
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&s))
	require.NotNil(t, s.Env)
	assert.Equal(t, "production", s.Env.Environment)
	assert.True(t, s.Env.EmailConfigured)
	assert.NotEmpty(t, s.Env.GoVersion)
}
