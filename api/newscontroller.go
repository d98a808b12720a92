package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsrec/config"
	"newsrec/rssfeeds"
)

// RegisterNewsRoutes registers category and corpus endpoints.
func (s *Server) RegisterNewsRoutes(r *gin.Engine) {
	g := r.Group("/api")
	g.GET("/categories", s.handleCategories)
	g.GET("/news/:category", s.handleNews)
	g.POST("/article/content", s.handleArticleContent)
}

// handleCategories lists the configured categories in display order.
// GET /api/categories
func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": config.CategoryOrder})
}

// handleNews returns the (possibly cached) corpus for a category.
// Per-source fetch failures surface as notices, never as an error
// status; an empty corpus with notices is a valid response.
// GET /api/news/:category
func (s *Server) handleNews(c *gin.Context) {
	category := c.Param("category")
	if _, ok := config.CategoryFeeds[category]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category: " + category})
		return
	}

	s.resolveSession(c)
	corpus, notices := s.cache.GetOrFetch(c.Request.Context(), category)

	noticeText := make([]string, 0, len(notices))
	for _, n := range notices {
		noticeText = append(noticeText, n.Error())
	}

	c.JSON(http.StatusOK, gin.H{
		"corpus":  corpus,
		"notices": noticeText,
	})
}

type articleContentRequest struct {
	Category string `json:"category" binding:"required"`
	Title    string `json:"title" binding:"required"`
}

// handleArticleContent extracts the full readable text of a selected
// article for the detail panel. Extraction failure falls back to the
// feed summary.
// POST /api/article/content
func (s *Server) handleArticleContent(c *gin.Context) {
	var req articleContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and title are required"})
		return
	}

	s.resolveSession(c)
	corpus, _ := s.cache.GetOrFetch(c.Request.Context(), req.Category)
	article := corpus.FindByTitle(req.Title)
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found: " + req.Title})
		return
	}

	content, err := rssfeeds.FetchFullContent(article)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"content": article.Content,
			"notices": []string{"full article unavailable, showing the feed summary"},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}
