package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseUintParam parses a numeric path parameter, responding 400 itself on
// failure. The second result is false when a response was already written.
func ParseUintParam(c *gin.Context, param string) (uint, bool) {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: idStr + " is not a valid numeric id",
		})
		return 0, false
	}
	return uint(id), true
}

// RequireQuery fetches a mandatory query parameter, responding 400 when it
// is missing.
func RequireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing " + name,
			Details: name + " query parameter is required",
		})
		return "", false
	}
	return value, true
}
