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
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
)

// PostsAPI provides content-post endpoints
type PostsAPI struct {
	repo   *db.PostRepository
	cache  *cache.Cache
	cfg    *config.Config
	logger *zap.Logger
}

// NewPostsAPI creates a new posts API
func NewPostsAPI(repo *db.Repository, redisCache *cache.Cache, cfg *config.Config) *PostsAPI {
	return &PostsAPI{
		repo:   db.NewPostRepository(repo),
		cache:  redisCache,
		cfg:    cfg,
		logger: logging.WithComponent("api-posts"),
	}
}

type createPostRequest struct {
	Title         string   `json:"title"`
	Body          string   `json:"body"`
	ScheduledDate string   `json:"scheduledDate"`
	Targets       []string `json:"targets"`
	Source        string   `json:"source"`
}

type updatePostRequest struct {
	Title         *string   `json:"title"`
	Body          *string   `json:"body"`
	ScheduledDate *string   `json:"scheduledDate"`
	Targets       *[]string `json:"targets"`
	Source        *string   `json:"source"`
}

type publishPostRequest struct {
	Channels []string `json:"channels"`
}

// List handles GET /api/v1/posts
func (a *PostsAPI) List(c *gin.Context) {
	posts, err := a.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/v1/posts/:id
func (a *PostsAPI) Get(c *gin.Context) {
	post, err := a.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load post", err)
		return
	}
	if post == nil {
		respondNotFound(c, "post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/v1/posts
func (a *PostsAPI) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(req.Targets) == 0 {
		respondError(c, http.StatusBadRequest, "at least one target channel is required", nil)
		return
	}
	for _, target := range req.Targets {
		if !a.knownChannel(target) {
			respondError(c, http.StatusBadRequest, "unknown channel: "+target, nil)
			return
		}
	}
	if req.ScheduledDate != "" && !validDate(req.ScheduledDate) {
		respondError(c, http.StatusBadRequest, "scheduledDate must be YYYY-MM-DD", nil)
		return
	}

	now := time.Now().UTC()
	post := &models.ContentPost{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Body:          req.Body,
		Status:        models.StatusDraft,
		Targets:       models.StringSet(req.Targets),
		PostedTargets: models.StringSet{},
		Source:        req.Source,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	post.Schedule(req.ScheduledDate, now)

	if err := a.repo.Create(c.Request.Context(), post); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create post", err)
		return
	}

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "posts", ID: post.ID, Op: "create"})
	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/v1/posts/:id
func (a *PostsAPI) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	post, err := a.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load post", err)
		return
	}
	if post == nil {
		respondNotFound(c, "post")
		return
	}

	now := time.Now().UTC()
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Source != nil {
		post.Source = *req.Source
	}
	if req.Targets != nil {
		if len(*req.Targets) == 0 {
			respondError(c, http.StatusBadRequest, "at least one target channel is required", nil)
			return
		}
		for _, target := range *req.Targets {
			if !a.knownChannel(target) {
				respondError(c, http.StatusBadRequest, "unknown channel: "+target, nil)
				return
			}
		}
		post.Targets = models.StringSet(*req.Targets)
	}
	if req.ScheduledDate != nil {
		if *req.ScheduledDate != "" && !validDate(*req.ScheduledDate) {
			respondError(c, http.StatusBadRequest, "scheduledDate must be YYYY-MM-DD", nil)
			return
		}
		post.Schedule(*req.ScheduledDate, now)
	}
	post.UpdatedAt = now

	if err := a.repo.Update(c.Request.Context(), post); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update post", err)
		return
	}

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "posts", ID: post.ID, Op: "update"})
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/v1/posts/:id
func (a *PostsAPI) Delete(c *gin.Context) {
	id := c.Param("id")
	post, err := a.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load post", err)
		return
	}
	if post == nil {
		respondNotFound(c, "post")
		return
	}

	if err := a.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete post", err)
		return
	}

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "posts", ID: id, Op: "delete"})
	c.Status(http.StatusNoContent)
}

// Publish handles POST /api/v1/posts/:id/publish. An empty channel list
// confirms every target of the post.
func (a *PostsAPI) Publish(c *gin.Context) {
	var req publishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	post, err := a.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load post", err)
		return
	}
	if post == nil {
		respondNotFound(c, "post")
		return
	}

	post.MarkPosted(req.Channels, time.Now().UTC())

	if err := a.repo.Update(c.Request.Context(), post); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to publish post", err)
		return
	}

	a.logger.Info("Post published",
		zap.String("id", post.ID),
		zap.Strings("channels", []string(post.PostedTargets)))

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "posts", ID: post.ID, Op: "update"})
	c.JSON(http.StatusOK, post)
}

func (a *PostsAPI) knownChannel(channel string) bool {
	for _, known := range a.cfg.Content.Channels {
		if known == channel {
			return true
		}
	}
	return false
}
