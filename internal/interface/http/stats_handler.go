package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthdiary/api/internal/application"
	"github.com/healthdiary/api/internal/interface/middleware"
	"github.com/healthdiary/api/pkg/response"
)

type StatsHandler struct {
	Svc    *application.StatsService
	Logger *logrus.Logger
}

func NewStatsHandler(svc *application.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{Svc: svc, Logger: logger}
}

// Overview GET /api/stats
func (h *StatsHandler) Overview(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	overview, err := h.Svc.Overview(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("failed to compute stats")
		response.Error(c, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	response.Success(c, http.StatusOK, overview, "")
}
