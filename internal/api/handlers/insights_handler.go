package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omoluabi/heartville/internal/services"
)

type InsightsHandler struct {
	svc services.InsightsService
}

func NewInsightsHandler(svc services.InsightsService) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

func (h *InsightsHandler) Summary(c *gin.Context) {
	insights, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
