package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter. A malformed ID cannot name a
// stored row, so callers answer it with their not-found error.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
