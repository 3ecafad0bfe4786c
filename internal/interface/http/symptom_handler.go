package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthdiary/api/internal/application"
	"github.com/healthdiary/api/internal/interface/middleware"
	"github.com/healthdiary/api/pkg/response"
	"github.com/healthdiary/api/pkg/validation"
)

type SymptomHandler struct {
	Svc    *application.DiaryService
	Logger *logrus.Logger
}

func NewSymptomHandler(svc *application.DiaryService, logger *logrus.Logger) *SymptomHandler {
	return &SymptomHandler{Svc: svc, Logger: logger}
}

// createSymptomRequest deliberately has no user_id: ownership comes from
// the authenticated identity and any owner field in the body is ignored.
type createSymptomRequest struct {
	Description string `json:"description" binding:"required"`
	Intensity   *int   `json:"intensity" binding:"omitempty,min=1,max=10"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

// List GET /api/symptoms
func (h *SymptomHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.ListSymptoms(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("failed to list symptoms")
		response.Error(c, http.StatusInternalServerError, "failed to fetch symptoms")
		return
	}
	response.List(c, items, len(items))
}

// Create POST /api/symptoms
func (h *SymptomHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}
	sym, err := h.Svc.AddSymptom(c.Request.Context(), uid, application.SymptomInput{
		Description: req.Description,
		Intensity:   req.Intensity,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			response.Error(c, http.StatusBadRequest, vErr.Error())
			return
		}
		h.Logger.WithError(err).Error("failed to create symptom")
		response.Error(c, http.StatusInternalServerError, "failed to save symptom")
		return
	}
	response.Success(c, http.StatusCreated, sym, "symptom added successfully")
}

// Delete DELETE /api/symptoms/:id
func (h *SymptomHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteSymptom(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "symptom not found")
			return
		}
		h.Logger.WithError(err).Error("failed to delete symptom")
		response.Error(c, http.StatusInternalServerError, "failed to delete symptom")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "symptom deleted successfully")
}
