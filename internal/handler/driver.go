package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// CreateDriverRequest is the HTTP request body for registering a driver.
// Coordinates are pointers so binding can tell a missing field from zero.
type CreateDriverRequest struct {
	ID string `json:"id"`
	X  *int   `json:"x" binding:"required"`
	Y  *int   `json:"y" binding:"required"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID                 string  `json:"id"`
	X                  int     `json:"x"`
	Y                  int     `json:"y"`
	Status             string  `json:"status"`
	AssignedCount      int     `json:"assigned_count"`
	LastBusyTick       *int    `json:"last_busy_tick"`
	CurrentRideID      *string `json:"current_ride_id"`
	IsHeadingToDropoff bool    `json:"is_heading_to_dropoff"`
}

// newDriverResponse maps a domain driver to its wire form. Null stands in
// for a never-set last-busy tick and for the absence of a current ride.
func newDriverResponse(d domain.Driver) DriverResponse {
	resp := DriverResponse{
		ID:                 d.ID,
		X:                  d.Position.X,
		Y:                  d.Position.Y,
		Status:             string(d.Status),
		AssignedCount:      d.AssignedCount,
		IsHeadingToDropoff: d.HeadingToDropoff,
	}
	if d.LastBusyTick != domain.NeverBusy {
		tick := d.LastBusyTick
		resp.LastBusyTick = &tick
	}
	if d.CurrentRideID != "" {
		rideID := d.CurrentRideID
		resp.CurrentRideID = &rideID
	}
	return resp
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pos := domain.Position{X: *req.X, Y: *req.Y}
	if !pos.InBounds() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "coordinates out of range"})
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), service.CreateDriverRequest{
		ID:       req.ID,
		Position: pos,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"driver": newDriverResponse(*driver)})
}

// DeleteDriver handles DELETE /drivers/:id
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	if err := h.driverService.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}
