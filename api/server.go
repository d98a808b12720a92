package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"newsrec/cache"
	"newsrec/config"
	"newsrec/recommender"
	"newsrec/session"
)

// SessionHeader carries the session id in both directions.
const SessionHeader = "X-Session-ID"

// Runner is the slice of the recommender the HTTP surface needs.
type Runner interface {
	Recommend(ctx context.Context, sess session.Session, category, selectedTitle string) *recommender.Result
}

// Server holds the pipeline dependencies behind the HTTP surface.
type Server struct {
	cfg         config.Config
	cache       *cache.CorpusCache
	recommender Runner
	sessions    *session.Manager
}

// NewServer wires a Server from its dependencies.
func NewServer(cfg config.Config, corpusCache *cache.CorpusCache, rec Runner, sessions *session.Manager) *Server {
	return &Server{
		cfg:         cfg,
		cache:       corpusCache,
		recommender: rec,
		sessions:    sessions,
	}
}

// NewRouter constructs a Gin engine with registered routes.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.RegisterNewsRoutes(r)
	s.RegisterRecommendRoutes(r)
	s.RegisterSessionRoutes(r)
	RegisterHealthRoutes(r)
	return r
}

// resolveSession maps the request's session header to a live session,
// minting a new one when missing or unknown, and echoes the id back.
func (s *Server) resolveSession(c *gin.Context) session.Session {
	sess := s.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sess.ID)
	return sess
}
