package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// PositionRequest carries grid coordinates in a request body. Pointer
// fields let binding tell a missing coordinate from zero.
type PositionRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// PositionResponse carries grid coordinates in a response body.
type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RideRequest is the HTTP request body for requesting a ride.
type RideRequest struct {
	RiderID string           `json:"rider_id" binding:"required"`
	Pickup  *PositionRequest `json:"pickup" binding:"required"`
	Dropoff *PositionRequest `json:"dropoff" binding:"required"`
}

// RideResponse is the HTTP response for ride data.
type RideResponse struct {
	ID                string           `json:"id"`
	RiderID           string           `json:"rider_id"`
	Pickup            PositionResponse `json:"pickup"`
	Dropoff           PositionResponse `json:"dropoff"`
	Status            string           `json:"status"`
	DriverID          *string          `json:"driver_id"`
	RejectedDriverIDs []string         `json:"rejected_driver_ids"`
}

// newRideResponse maps a domain ride to its wire form. The rejection list
// serializes as an empty array, never null, and an unassigned ride carries
// a null driver_id.
func newRideResponse(r domain.Ride) RideResponse {
	resp := RideResponse{
		ID:                r.ID,
		RiderID:           r.RiderID,
		Pickup:            PositionResponse{X: r.Pickup.X, Y: r.Pickup.Y},
		Dropoff:           PositionResponse{X: r.Dropoff.X, Y: r.Dropoff.Y},
		Status:            string(r.Status),
		RejectedDriverIDs: r.RejectedDriverIDs,
	}
	if resp.RejectedDriverIDs == nil {
		resp.RejectedDriverIDs = []string{}
	}
	if r.DriverID != "" {
		driverID := r.DriverID
		resp.DriverID = &driverID
	}
	return resp
}

// RequestRide handles POST /rides/request
func (h *RideHandler) RequestRide(c *gin.Context) {
	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pickup := domain.Position{X: *req.Pickup.X, Y: *req.Pickup.Y}
	dropoff := domain.Position{X: *req.Dropoff.X, Y: *req.Dropoff.Y}
	if !pickup.InBounds() || !dropoff.InBounds() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "coordinates out of range"})
		return
	}

	ride, err := h.rideService.RequestRide(c.Request.Context(), service.RideRequest{
		RiderID: req.RiderID,
		Pickup:  pickup,
		Dropoff: dropoff,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"ride": newRideResponse(*ride)})
}

// AcceptRide handles POST /rides/:id/accept
func (h *RideHandler) AcceptRide(c *gin.Context) {
	ride, err := h.rideService.AcceptRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"ride": newRideResponse(*ride)})
}

// RejectRide handles POST /rides/:id/reject
func (h *RideHandler) RejectRide(c *gin.Context) {
	ride, err := h.rideService.RejectRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"ride": newRideResponse(*ride)})
}
