package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *app.App.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController checks store connectivity.
type HealthController struct {
	store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Error("housekeeping-service DB unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
