package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustintsang/gigaml-takehome/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrDriverNotFound),
		errors.Is(err, service.ErrRiderNotFound),
		errors.Is(err, service.ErrRideNotFound):
		return http.StatusNotFound

	// Invalid state and duplicate identity errors - Bad Request
	case errors.Is(err, service.ErrRideNotAwaitingAccept),
		errors.Is(err, service.ErrNoDriverAssigned),
		errors.Is(err, service.ErrDriverExists),
		errors.Is(err, service.ErrRiderExists):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
