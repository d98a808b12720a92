package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers session key submission.
func (s *Server) RegisterSessionRoutes(r *gin.Engine) {
	r.POST("/api/session/keys", s.handleSessionKeys)
}

type sessionKeysRequest struct {
	ModelKey string `json:"model_key"`
	VideoKey string `json:"video_key"`
}

// handleSessionKeys stores user-supplied API keys on the caller's
// session. Keys live only as long as the session.
// POST /api/session/keys
func (s *Server) handleSessionKeys(c *gin.Context) {
	var req sessionKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if req.ModelKey == "" && req.VideoKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one key is required"})
		return
	}

	sess := s.resolveSession(c)
	s.sessions.SetKeys(sess.ID, req.ModelKey, req.VideoKey)
	c.JSON(http.StatusOK, gin.H{"status": "keys stored", "session": sess.ID})
}
