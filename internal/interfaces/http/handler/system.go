package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siteledger/backend/internal/infrastructure/persistence"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// SystemHandler serves the health and info endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	appName   string
	startTime time.Time
}

// NewSystemHandler creates a system handler
func NewSystemHandler(db *persistence.Database, appName string, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: NewBaseHandler(logger),
		db:          db,
		appName:     appName,
		startTime:   time.Now(),
	}
}

// HealthResponse reports the liveness of the service and its database
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// Health handles GET /health. It returns 503 when the database is not
// reachable so load balancers can take the instance out of rotation.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "error",
			Time:     time.Now().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "ok",
		Time:     time.Now().Format(time.RFC3339),
	})
}

// InfoResponse describes the running service
type InfoResponse struct {
	Name      string `json:"name"`
	GoVersion string `json:"goVersion"`
	Uptime    string `json:"uptime"`
}

// Info handles GET /system/info
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(InfoResponse{
		Name:      h.appName,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}))
}
