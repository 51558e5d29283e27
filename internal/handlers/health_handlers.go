package handlers

import (
	"net/http"

	httpClient "top-sales-tracker/internal/client/http"
	"top-sales-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

// StatsSource exposes counters of outbound calls
type StatsSource interface {
	Snapshot() httpClient.RequestStats
}

type HealthHandler struct {
	registry *services.SessionRegistry
	stats    StatsSource
}

func NewHealthHandler(registry *services.SessionRegistry, stats StatsSource) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		stats:    stats,
	}
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse   "Returns health status"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.registry != nil {
		resp.Sessions = h.registry.Len()
	}
	if h.stats != nil {
		snapshot := h.stats.Snapshot()
		resp.Upstream = &UpstreamStats{
			Requests:        snapshot.Requests,
			Errors:          snapshot.Errors,
			AverageDuration: snapshot.AverageDuration,
			LastStatus:      snapshot.LastStatus,
		}
	}
	c.JSON(http.StatusOK, resp)
}
