package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthdiary/api/internal/application"
	"github.com/healthdiary/api/internal/interface/middleware"
	"github.com/healthdiary/api/pkg/response"
	"github.com/healthdiary/api/pkg/validation"
)

type MedicationHandler struct {
	Svc    *application.DiaryService
	Logger *logrus.Logger
}

func NewMedicationHandler(svc *application.DiaryService, logger *logrus.Logger) *MedicationHandler {
	return &MedicationHandler{Svc: svc, Logger: logger}
}

type createMedicationRequest struct {
	Name      string     `json:"name" binding:"required"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	TakenAt   *time.Time `json:"taken_at"`
	Notes     string     `json:"notes"`
}

// List GET /api/medications
func (h *MedicationHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.ListMedications(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("failed to list medications")
		response.Error(c, http.StatusInternalServerError, "failed to fetch medications")
		return
	}
	response.List(c, items, len(items))
}

// Create POST /api/medications
func (h *MedicationHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}
	med, err := h.Svc.AddMedication(c.Request.Context(), uid, application.MedicationInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		TakenAt:   req.TakenAt,
		Notes:     req.Notes,
	})
	if err != nil {
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			response.Error(c, http.StatusBadRequest, vErr.Error())
			return
		}
		h.Logger.WithError(err).Error("failed to create medication")
		response.Error(c, http.StatusInternalServerError, "failed to save medication")
		return
	}
	response.Success(c, http.StatusCreated, med, "medication added successfully")
}

// Delete DELETE /api/medications/:id
func (h *MedicationHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteMedication(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "medication not found")
			return
		}
		h.Logger.WithError(err).Error("failed to delete medication")
		response.Error(c, http.StatusInternalServerError, "failed to delete medication")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "medication deleted successfully")
}
