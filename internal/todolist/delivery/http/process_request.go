package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"todolist-sync/internal/todolist"
)

// processListReq binds and validates a list body. For PUT the id comes
// from the URI and overrides the body.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if id := c.Param("id"); id != "" {
		req.ID = id
	}
	if strings.TrimSpace(req.Title) == "" {
		return req, fmt.Errorf("%w: title is required", todolist.ErrValidation)
	}
	return req, nil
}
