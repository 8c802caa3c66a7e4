package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tm-intent-classifier/internal/classify"
)

// processClassifyReq binds and validates the classify request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, classify.ErrEmptyQuery
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, classify.ErrEmptyQuery
	}
	return req, nil
}
