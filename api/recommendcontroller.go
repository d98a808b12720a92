package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsrec/config"
)

// RegisterRecommendRoutes registers the recommendation endpoint.
func (s *Server) RegisterRecommendRoutes(r *gin.Engine) {
	r.POST("/api/recommend", s.handleRecommend)
}

type recommendRequest struct {
	Category string `json:"category" binding:"required"`
	Title    string `json:"title" binding:"required"`
}

// handleRecommend runs the full pipeline for the selected article.
// Pipeline failures degrade to empty lists plus notices in a 200
// response; only usage gating and bad input produce error statuses.
// POST /api/recommend
func (s *Server) handleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and title are required"})
		return
	}

	sess := s.resolveSession(c)
	if sess.NeedsOwnKey() {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":         "free usage limit reached; submit your own model API key to continue",
			"needs_api_key": true,
			"free_uses":     config.FreeUses,
		})
		return
	}

	result := s.recommender.Recommend(c.Request.Context(), sess, req.Category, req.Title)
	uses := s.sessions.RecordUse(sess.ID)

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"uses":   uses,
	})
}
