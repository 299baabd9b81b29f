package handler

import (
	"net/http"
	"runtime"
	"time"
)

const (
	serviceName    = "Learnnect OTP Backend"
	serviceVersion = "1.0.0"
)

// HealthHandler reports service status and uptime.
type HealthHandler struct {
	startedAt       time.Time
	appEnv          string
	emailConfigured bool
}

func NewHealthHandler(startedAt time.Time, appEnv string, emailConfigured bool) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, appEnv: appEnv, emailConfigured: emailConfigured}
}

type healthStatus struct {
	Status        string     `json:"status"`
	Service       string     `json:"service"`
	Version       string     `json:"version"`
	Timestamp     time.Time  `json:"timestamp"`
	UptimeSeconds float64    `json:"uptime"`
	Env           *healthEnv `json:"env,omitempty"`
}

type healthEnv struct {
	GoVersion       string `json:"goVersion"`
	Platform        string `json:"platform"`
	Environment     string `json:"environment"`
	EmailConfigured bool   `json:"emailConfigured"`
}

func (h *HealthHandler) status() healthStatus {
	return healthStatus{
		Status:        "OK",
		Service:       serviceName,
		Version:       serviceVersion,
		Timestamp:     time.Now().UTC(),
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
	}
}

// Root serves GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.status())
}

// Health serves GET /health with extended environment detail.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	s := h.status()
	s.Env = &healthEnv{
		GoVersion:       runtime.Version(),
		Platform:        runtime.GOOS,
		Environment:     h.appEnv,
		EmailConfigured: h.emailConfigured,
	}
	writeJSON(w, http.StatusOK, s)
}
