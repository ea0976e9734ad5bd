package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustintsang/gigaml-takehome/internal/service"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// SimHandler handles HTTP requests for the simulation clock and state.
type SimHandler struct {
	simService *service.SimService
}

// NewSimHandler creates a new SimHandler.
func NewSimHandler(simService *service.SimService) *SimHandler {
	return &SimHandler{simService: simService}
}

// StateResponse is the HTTP response for the full world state.
type StateResponse struct {
	Tick    int              `json:"tick"`
	Drivers []DriverResponse `json:"drivers"`
	Riders  []RiderResponse  `json:"riders"`
	Rides   []RideResponse   `json:"rides"`
}

// newStateResponse maps a world snapshot to its wire form. Collections
// serialize as arrays in creation order, empty rather than null.
func newStateResponse(snap store.Snapshot) StateResponse {
	resp := StateResponse{
		Tick:    snap.Tick,
		Drivers: make([]DriverResponse, 0, len(snap.Drivers)),
		Riders:  make([]RiderResponse, 0, len(snap.Riders)),
		Rides:   make([]RideResponse, 0, len(snap.Rides)),
	}
	for _, d := range snap.Drivers {
		resp.Drivers = append(resp.Drivers, newDriverResponse(d))
	}
	for _, r := range snap.Riders {
		resp.Riders = append(resp.Riders, newRiderResponse(r))
	}
	for _, r := range snap.Rides {
		resp.Rides = append(resp.Rides, newRideResponse(r))
	}
	return resp
}

// GetState handles GET /state
func (h *SimHandler) GetState(c *gin.Context) {
	snap := h.simService.State(c.Request.Context())
	respondJSON(c, http.StatusOK, newStateResponse(snap))
}

// Tick handles POST /tick
func (h *SimHandler) Tick(c *gin.Context) {
	snap := h.simService.Tick(c.Request.Context())
	respondJSON(c, http.StatusOK, newStateResponse(snap))
}

// Reset handles POST /reset
func (h *SimHandler) Reset(c *gin.Context) {
	h.simService.Reset(c.Request.Context())
	respondJSON(c, http.StatusOK, gin.H{"message": "State reset successfully"})
}
