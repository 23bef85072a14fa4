package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/ingest"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/pkg/logging"
)

// NewsAPI provides news triage endpoints
type NewsAPI struct {
	repo     *db.NewsRepository
	cache    *cache.Cache
	ingestor *ingest.Ingestor
	logger   *zap.Logger
}

// NewNewsAPI creates a new news API
func NewNewsAPI(repo *db.Repository, redisCache *cache.Cache, ingestor *ingest.Ingestor) *NewsAPI {
	return &NewsAPI{
		repo:     db.NewNewsRepository(repo),
		cache:    redisCache,
		ingestor: ingestor,
		logger:   logging.WithComponent("api-news"),
	}
}

type decideRequest struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// List handles GET /api/v1/news?status=queued
func (a *NewsAPI) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidNewsStatus(status) {
		respondError(c, http.StatusBadRequest, "invalid status filter", nil)
		return
	}

	decisions, err := a.repo.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list news decisions", err)
		return
	}
	c.JSON(http.StatusOK, decisions)
}

// Decide handles PUT /api/v1/news/:article_id. It creates the triage record
// on first stance and moves the status freely afterwards.
func (a *NewsAPI) Decide(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if !models.ValidNewsStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "status must be queued, posted or declined", nil)
		return
	}

	articleID := c.Param("article_id")
	now := time.Now().UTC()

	decision, err := a.repo.GetByArticleID(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load decision", err)
		return
	}
	if decision == nil {
		decision = &models.NewsDecision{
			ArticleID: articleID,
			DecidedAt: now,
		}
	}

	// A status change is a fresh decision: restamp DecidedAt so the monthly
	// report attributes it to the month the user acted, not the month the
	// ingestor queued the article
	if decision.Status != req.Status {
		decision.DecidedAt = now
	}
	decision.Status = req.Status
	decision.UpdatedAt = now
	if req.Title != "" {
		decision.Title = req.Title
	}
	if req.URL != "" {
		decision.URL = req.URL
	}
	if req.Summary != "" {
		decision.Summary = req.Summary
	}

	if err := a.repo.Save(c.Request.Context(), decision); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save decision", err)
		return
	}

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "news", ID: articleID, Op: "update"})
	c.JSON(http.StatusOK, decision)
}

// Delete handles DELETE /api/v1/news/:article_id. The record is removed
// entirely, not just its status.
func (a *NewsAPI) Delete(c *gin.Context) {
	articleID := c.Param("article_id")

	decision, err := a.repo.GetByArticleID(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load decision", err)
		return
	}
	if decision == nil {
		respondNotFound(c, "decision")
		return
	}

	if err := a.repo.Delete(c.Request.Context(), articleID); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete decision", err)
		return
	}

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "news", ID: articleID, Op: "delete"})
	c.Status(http.StatusNoContent)
}

// Refresh handles POST /api/v1/news/refresh: fetches the configured feeds
// and queues any new matching articles
func (a *NewsAPI) Refresh(c *gin.Context) {
	queued, err := a.ingestor.RunOnce(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to refresh feeds", err)
		return
	}

	a.logger.Info("Feed refresh complete", zap.Int("queued", queued))
	c.JSON(http.StatusOK, gin.H{"queued": queued})
}
