package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recyclezone/marketplace/internal/infrastructure/logger"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RootMessage is returned by GET /
const RootMessage = "Recycle Zone API is running"

const healthCheckTimeout = 3 * time.Second

// Pinger is a dependency the health check can probe
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger
type PingerFunc func(ctx context.Context) error

// PingContext calls f(ctx)
func (f PingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// SystemHandler serves the liveness endpoints
type SystemHandler struct {
	BaseHandler
	database Pinger
	redis    Pinger
}

// NewSystemHandler creates a new SystemHandler. redis may be nil when the
// token blacklist runs in memory.
func NewSystemHandler(database, redis Pinger) *SystemHandler {
	return &SystemHandler{database: database, redis: redis}
}

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

// Root godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=string}
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	h.Success(c, RootMessage)
}

// Health godoc
// @Summary      Health check
// @Description  Pings the database and, when configured, Redis
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthStatus}
// @Failure      503 {object} dto.Response{data=HealthStatus}
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := HealthStatus{
		Status:   "healthy",
		Time:     time.Now().UTC().Format(time.RFC3339),
		Database: "ok",
	}

	reqLog := logger.L(c.Request.Context())
	if err := h.database.PingContext(ctx); err != nil {
		reqLog.Warn("Health check failed", zap.String("dependency", "database"), zap.Error(err))
		status.Status = "unhealthy"
		status.Database = "error"
	}
	if h.redis != nil {
		status.Redis = "ok"
		if err := h.redis.PingContext(ctx); err != nil {
			reqLog.Warn("Health check failed", zap.String("dependency", "redis"), zap.Error(err))
			status.Status = "unhealthy"
			status.Redis = "error"
		}
	}

	if status.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Data: status})
		return
	}
	h.Success(c, status)
}
