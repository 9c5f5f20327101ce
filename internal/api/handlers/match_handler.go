package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omoluabi/heartville/internal/services"
	"github.com/omoluabi/heartville/internal/utils"
)

type MatchHandler struct {
	svc services.MatchService
}

func NewMatchHandler(svc services.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// userIDQuery resolves ?userId=. Only an absent parameter falls back to the
// demo user; an explicitly empty one stays empty and matches nobody.
func userIDQuery(c *gin.Context) string {
	if userID, ok := c.GetQuery("userId"); ok {
		return userID
	}
	return services.DefaultUserID
}

func (h *MatchHandler) List(c *gin.Context) {
	matches, err := h.svc.ListByUser(c.Request.Context(), userIDQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

type CreateMatchRequest struct {
	UserID    string `json:"userId"`
	TargetID  string `json:"targetId"`
	SuperLike bool   `json:"superLike"`
}

// Create is idempotent per (userId, targetId): a repeat like answers 200 with
// the existing match, a fresh one answers 201.
func (h *MatchHandler) Create(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MatchHandler.Create", "invalid request body", err))
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req.UserID, req.TargetID, req.SuperLike)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if result.NewlyCreated {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"match": result})
}

type RewindRequest struct {
	TargetID string `json:"targetId"`
}

func (h *MatchHandler) Rewind(c *gin.Context) {
	var req RewindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MatchHandler.Rewind", "invalid request body", err))
		return
	}

	if err := h.svc.Rewind(c.Request.Context(), req.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MatchHandler) Messages(c *gin.Context) {
	messages, err := h.svc.MessagesByUser(c.Request.Context(), userIDQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
