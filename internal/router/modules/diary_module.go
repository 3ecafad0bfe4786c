package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/healthdiary/api/internal/interface/http"
	"github.com/healthdiary/api/internal/interface/middleware"
	"github.com/healthdiary/api/pkg/helpers"
)

// DiaryModule wires the owner-scoped diary routes. Everything here sits
// behind the bearer-token gateway.
type DiaryModule struct {
	Symptoms    *handlers.SymptomHandler
	Medications *handlers.MedicationHandler
	Stats       *handlers.StatsHandler
	JWT         *helpers.JWTManager
}

func NewDiaryModule(s *handlers.SymptomHandler, m *handlers.MedicationHandler, st *handlers.StatsHandler, jwt *helpers.JWTManager) *DiaryModule {
	return &DiaryModule{Symptoms: s, Medications: m, Stats: st, JWT: jwt}
}

func (m *DiaryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/symptoms", m.Symptoms.List)
		auth.POST("/symptoms", m.Symptoms.Create)
		auth.DELETE("/symptoms/:id", m.Symptoms.Delete)

		auth.GET("/medications", m.Medications.List)
		auth.POST("/medications", m.Medications.Create)
		auth.DELETE("/medications/:id", m.Medications.Delete)

		auth.GET("/stats", m.Stats.Overview)
	}
}
