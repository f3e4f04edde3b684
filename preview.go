package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"lg/gym-plan-go-api/planner"
)

// previewPlan validates a profile and returns the rule-based plan. Nothing is
// stored and the AI is never called.
// POST /api/plan/preview
func (h *Handler) previewPlan(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.normalize()
	if err := validate.Struct(req); err != nil {
		apiError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source": planSourceRuleBased,
		"plan":   planner.Build(req.toProfile()),
	})
}

// health reports whether the database and the AI collaborator are available.
// GET /api/health
func (h *Handler) health(c *gin.Context) {
	dbOK := false
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c, 2*time.Second)
		defer cancel()
		dbOK = h.db.Ping(ctx) == nil
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbOK,
		"ai":       os.Getenv("OPENAI_API_KEY") != "",
	})
}
