package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/service"
)

// RiderHandler handles HTTP requests for riders.
type RiderHandler struct {
	riderService *service.RiderService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(riderService *service.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

// CreateRiderRequest is the HTTP request body for registering a rider.
type CreateRiderRequest struct {
	ID string `json:"id"`
	X  *int   `json:"x" binding:"required"`
	Y  *int   `json:"y" binding:"required"`
}

// RiderResponse is the HTTP response for rider data.
type RiderResponse struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// newRiderResponse maps a domain rider to its wire form.
func newRiderResponse(r domain.Rider) RiderResponse {
	return RiderResponse{ID: r.ID, X: r.Position.X, Y: r.Position.Y}
}

// CreateRider handles POST /riders
func (h *RiderHandler) CreateRider(c *gin.Context) {
	var req CreateRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pos := domain.Position{X: *req.X, Y: *req.Y}
	if !pos.InBounds() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "coordinates out of range"})
		return
	}

	rider, err := h.riderService.CreateRider(c.Request.Context(), service.CreateRiderRequest{
		ID:       req.ID,
		Position: pos,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"rider": newRiderResponse(*rider)})
}

// DeleteRider handles DELETE /riders/:id
func (h *RiderHandler) DeleteRider(c *gin.Context) {
	if err := h.riderService.DeleteRider(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "Rider deleted successfully"})
}
