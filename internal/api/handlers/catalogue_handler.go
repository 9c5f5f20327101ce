package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omoluabi/heartville/internal/services"
)

type CatalogueHandler struct {
	svc services.CatalogueService
}

func NewCatalogueHandler(svc services.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{svc: svc}
}

func (h *CatalogueHandler) Album(c *gin.Context) {
	album, err := h.svc.Album(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"album": album})
}

func (h *CatalogueHandler) SearchTracks(c *gin.Context) {
	tracks, err := h.svc.SearchTracks(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}
