package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a numeric path parameter. Zero and non-numeric values
// both report false; identifiers start at 1.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

func parseOptionalUintQuery(c *gin.Context, name string) (*uint64, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return nil, false
	}
	return &parsed, true
}
