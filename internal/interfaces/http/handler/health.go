package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the datastore is reachable
type Pinger interface {
	Ping() error
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	db        Pinger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse is the health probe payload
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Health reports process and database health. A failing database ping
// degrades the status and the HTTP code so orchestrators can react.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "up",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	status := http.StatusOK
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "down"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, resp)
}
