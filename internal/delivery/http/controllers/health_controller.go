package controllers

import (
	"context"
	"net/http"

	"lectureroomfinder/internal/delivery/http/helpers"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{Store: store}
}

// HealthResponse is the data payload for GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// Check godoc
// @Summary Liveness and store reachability
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	if err := c.Store.Ping(r.Context()); err != nil {
		dbStatus = "fail"
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Database: dbStatus,
		Version:  Version,
	})
}
