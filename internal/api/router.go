package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/ai"
	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/ingest"
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
)

// Router sets up API routes
type Router struct {
	cfg      *config.Config
	db       *db.DB
	cache    *cache.Cache
	aiClient *ai.Client
	ingestor *ingest.Ingestor
	logger   *zap.Logger
}

// NewRouter creates a new API router. aiClient may be nil when no API key is
// configured; the AI endpoints then answer 503.
func NewRouter(cfg *config.Config, database *db.DB, redisCache *cache.Cache, aiClient *ai.Client, ingestor *ingest.Ingestor) *Router {
	return &Router{
		cfg:      cfg,
		db:       database,
		cache:    redisCache,
		aiClient: aiClient,
		ingestor: ingestor,
		logger:   logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	repo := db.NewRepository(r.db.DB)

	posts := NewPostsAPI(repo, r.cache, r.cfg)
	quotes := NewQuotesAPI(repo, r.cache)
	newsAPI := NewNewsAPI(repo, r.cache, r.ingestor)
	ideas := NewIdeasAPI(repo, r.cache)
	stats := NewStatsAPI(repo, r.cache, r.cfg)
	settings := NewSettingsAPI(repo, r.cache, r.cfg)
	aiAPI := NewAIAPI(r.aiClient)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/posts", posts.List)
		v1.POST("/posts", posts.Create)
		v1.GET("/posts/:id", posts.Get)
		v1.PUT("/posts/:id", posts.Update)
		v1.DELETE("/posts/:id", posts.Delete)
		v1.POST("/posts/:id/publish", posts.Publish)

		v1.GET("/quotes", quotes.List)
		v1.GET("/quotes/today", quotes.Today)
		v1.POST("/quotes/:id/toggle", quotes.Toggle)

		v1.GET("/news", newsAPI.List)
		v1.PUT("/news/:article_id", newsAPI.Decide)
		v1.DELETE("/news/:article_id", newsAPI.Delete)
		v1.POST("/news/refresh", newsAPI.Refresh)

		v1.GET("/ideas", ideas.List)
		v1.POST("/ideas", ideas.Create)
		v1.DELETE("/ideas/:id", ideas.Delete)
		v1.POST("/ideas/:id/promote", ideas.Promote)

		v1.GET("/stats", stats.Get)
		v1.GET("/stats/report", stats.Report)

		v1.GET("/settings", settings.Get)
		v1.PUT("/settings", settings.Update)

		v1.POST("/ai/caption", aiAPI.Caption)
		v1.POST("/ai/image-prompt", aiAPI.ImagePrompt)
	}
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "postdeck",
		"backend": string(r.db.Backend),
	})
}
