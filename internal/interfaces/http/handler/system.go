package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketplace/backend/internal/interfaces/http/dto"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler serves liveness and build information
type SystemHandler struct {
	BaseHandler
	name      string
	backend   string
	store     Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. store may be nil for the memory ledger.
func NewSystemHandler(name, backend string, store Pinger) *SystemHandler {
	return &SystemHandler{
		name:      name,
		backend:   backend,
		store:     store,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Name      string `json:"name" example:"marketplace"`
	Ledger    string `json:"ledger" example:"memory"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// Health godoc
// @Summary      Liveness check
// @Description  Reports uptime and whether the ledger store answers
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      503 {object} dto.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeInternal, "Ledger store unavailable")
			return
		}
	}

	h.Success(c, HealthResponse{
		Status:    "ok",
		Name:      h.name,
		Ledger:    h.backend,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
