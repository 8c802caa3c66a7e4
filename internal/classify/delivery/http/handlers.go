package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tm-intent-classifier/internal/classify"
	"tm-intent-classifier/pkg/response"
)

// Classify godoc
// @Summary     Classify a user query
// @Description Determines whether a query relates to SAP SuccessFactors Talent Management, identifies the topic, and returns relevant SAP Help Portal links.
// @Tags        Classification
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Query to classify"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Empty or malformed query"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, classify.ErrEmptyQuery) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.InternalError(c, err)
		return
	}

	response.JSON(c, h.newClassifyResp(output))
}
