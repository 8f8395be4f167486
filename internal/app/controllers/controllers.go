// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
)

// pathID parses an int64 path parameter. On failure it writes a 400 response
// and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// currentUserID reads the authenticated user ID set by the auth middleware
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User ID not found in context")))
		return 0, false
	}
	userID, ok := v.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Invalid user ID format")))
		return 0, false
	}
	return userID, true
}

// mapper is satisfied by every entity model
type mapper interface {
	ToMap() map[string]any
}

// project converts a slice of entities to their map projections
func project[T mapper](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToMap())
	}
	return out
}

// respond writes the standard success envelope
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewStructuredResponse(data, message))
}

// notFound writes a 404 with the standard envelope
func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, what+" not found")))
}
