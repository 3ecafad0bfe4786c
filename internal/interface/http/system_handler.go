package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/healthdiary/api/config"
	"github.com/healthdiary/api/pkg/response"
)

// HealthDB is the single query surface the health probe needs.
// pgxpool.Pool satisfies it.
type HealthDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SystemHandler serves the root API index and the health probe.
type SystemHandler struct {
	DB      HealthDB
	Logger  *logrus.Logger
	Cfg     *config.Config
	started time.Time
}

func NewSystemHandler(db HealthDB, logger *logrus.Logger, cfg *config.Config) *SystemHandler {
	return &SystemHandler{DB: db, Logger: logger, Cfg: cfg, started: time.Now()}
}

// Root GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"name":      h.Cfg.AppName,
		"version":   h.Cfg.AppVersion,
		"status":    "running",
		"timestamp": time.Now().UTC(),
		"database":  "PostgreSQL",
		"endpoints": gin.H{
			"health":      "/api/health",
			"auth":        gin.H{"register": "POST /api/auth/register", "login": "POST /api/auth/login", "me": "GET /api/auth/me"},
			"symptoms":    gin.H{"list": "GET /api/symptoms", "create": "POST /api/symptoms", "delete": "DELETE /api/symptoms/:id"},
			"medications": gin.H{"list": "GET /api/medications", "create": "POST /api/medications", "delete": "DELETE /api/medications/:id"},
			"stats":       "GET /api/stats",
		},
	}, "")
}

// Health GET /api/health reports database connectivity instead of
// failing the process when the pool is unhealthy.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var dbTime time.Time
	var dbVersion string
	if err := h.DB.QueryRow(ctx, `SELECT now(), version()`).Scan(&dbTime, &dbVersion); err != nil {
		h.Logger.WithError(err).Error("health check failed")
		response.Error(c, http.StatusInternalServerError, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   h.Cfg.AppName,
		"database": gin.H{
			"status":  "connected",
			"time":    dbTime,
			"version": shortVersion(dbVersion),
		},
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	}, "")
}

func shortVersion(v string) string {
	words := strings.Fields(v)
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
