package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/pkg/logging"
)

// IdeasAPI provides idea-backlog endpoints
type IdeasAPI struct {
	repo   *db.IdeaRepository
	posts  *db.PostRepository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewIdeasAPI creates a new ideas API
func NewIdeasAPI(repo *db.Repository, redisCache *cache.Cache) *IdeasAPI {
	return &IdeasAPI{
		repo:   db.NewIdeaRepository(repo),
		posts:  db.NewPostRepository(repo),
		cache:  redisCache,
		logger: logging.WithComponent("api-ideas"),
	}
}

type createIdeaRequest struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

type promoteIdeaRequest struct {
	Targets       []string `json:"targets"`
	ScheduledDate string   `json:"scheduledDate"`
}

// List handles GET /api/v1/ideas
func (a *IdeasAPI) List(c *gin.Context) {
	ideas, err := a.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list ideas", err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

// Create handles POST /api/v1/ideas
func (a *IdeasAPI) Create(c *gin.Context) {
	var req createIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Text == "" {
		respondError(c, http.StatusBadRequest, "text is required", nil)
		return
	}

	now := time.Now().UTC()
	idea := &models.Idea{
		ID:        uuid.NewString(),
		Text:      req.Text,
		Tags:      models.StringSet(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if idea.Tags == nil {
		idea.Tags = models.StringSet{}
	}

	if err := a.repo.Create(c.Request.Context(), idea); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create idea", err)
		return
	}
	c.JSON(http.StatusCreated, idea)
}

// Delete handles DELETE /api/v1/ideas/:id
func (a *IdeasAPI) Delete(c *gin.Context) {
	id := c.Param("id")
	idea, err := a.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load idea", err)
		return
	}
	if idea == nil {
		respondNotFound(c, "idea")
		return
	}

	if err := a.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete idea", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Promote handles POST /api/v1/ideas/:id/promote: the idea becomes a draft
// post and leaves the backlog
func (a *IdeasAPI) Promote(c *gin.Context) {
	var req promoteIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.ScheduledDate != "" && !validDate(req.ScheduledDate) {
		respondError(c, http.StatusBadRequest, "scheduledDate must be YYYY-MM-DD", nil)
		return
	}

	id := c.Param("id")
	idea, err := a.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load idea", err)
		return
	}
	if idea == nil {
		respondNotFound(c, "idea")
		return
	}

	now := time.Now().UTC()
	post := &models.ContentPost{
		ID:            uuid.NewString(),
		Body:          idea.Text,
		Status:        models.StatusDraft,
		Targets:       models.StringSet(req.Targets),
		PostedTargets: models.StringSet{},
		Source:        models.SourceCustom,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Targets == nil {
		post.Targets = models.StringSet{}
	}
	post.Schedule(req.ScheduledDate, now)

	if err := a.posts.Create(c.Request.Context(), post); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create post", err)
		return
	}
	if err := a.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to remove idea", err)
		return
	}

	a.logger.Info("Idea promoted", zap.String("idea_id", id), zap.String("post_id", post.ID))

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "posts", ID: post.ID, Op: "create"})
	c.JSON(http.StatusCreated, post)
}
