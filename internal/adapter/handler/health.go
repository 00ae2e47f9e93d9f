package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/minutemeet/internal/infrastructure/cache"
	"github.com/johnquangdev/minutemeet/pkg/config"
)

const healthCacheKey = "health:status"

// HealthHandler reports service health with a short-lived cached snapshot
type HealthHandler struct {
	db     *gorm.DB
	store  cache.Store
	cfg    *config.Config
	logger *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, store cache.Store, cfg *config.Config, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, store: store, cfg: cfg, logger: logger}
}

// Check returns health status of the service and its dependencies
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	if h.store != nil {
		if cached, found, err := h.store.Get(ctx, healthCacheKey); err == nil && found {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}
	}

	status := map[string]interface{}{
		"status":          "healthy",
		"database":        "connected",
		"cache":           "ready",
		"analysis_engine": "ready",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			status["status"] = "degraded"
			status["database"] = "unavailable"
			if h.logger != nil {
				h.logger.Warn("health check: database unreachable", zap.Error(err))
			}
		}
	}

	body, err := json.Marshal(status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error"})
	}

	if h.store != nil && status["status"] == "healthy" {
		ttl := 30 * time.Second
		if h.cfg != nil && h.cfg.Cache.HealthTTL > 0 {
			ttl = h.cfg.Cache.HealthTTL
		}
		_ = h.store.Set(ctx, healthCacheKey, string(body), ttl)
	}

	return c.JSONBlob(http.StatusOK, body)
}
