package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/healthdiary/api/internal/interface/http"
)

// SystemModule wires the root API index and the health probe. Both are
// public.
type SystemModule struct {
	Handler *handlers.SystemHandler
	Engine  *gin.Engine
}

func NewSystemModule(h *handlers.SystemHandler, engine *gin.Engine) *SystemModule {
	return &SystemModule{Handler: h, Engine: engine}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	m.Engine.GET("/", m.Handler.Root)
	rg.GET("/health", m.Handler.Health)
}
