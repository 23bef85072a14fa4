package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
)

// SettingsAPI provides the single-row settings endpoints
type SettingsAPI struct {
	repo   *db.SettingsRepository
	cache  *cache.Cache
	cfg    *config.Config
	logger *zap.Logger
}

// NewSettingsAPI creates a new settings API
func NewSettingsAPI(repo *db.Repository, redisCache *cache.Cache, cfg *config.Config) *SettingsAPI {
	return &SettingsAPI{
		repo:   db.NewSettingsRepository(repo),
		cache:  redisCache,
		cfg:    cfg,
		logger: logging.WithComponent("api-settings"),
	}
}

type updateSettingsRequest struct {
	DisplayName *string   `json:"displayName"`
	Channels    *[]string `json:"channels"`
	FeedURLs    *[]string `json:"feedUrls"`
	Keywords    *[]string `json:"keywords"`
}

// Get handles GET /api/v1/settings
func (a *SettingsAPI) Get(c *gin.Context) {
	settings, err := a.repo.Get(c.Request.Context(), a.defaults())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /api/v1/settings. Absent fields keep their stored value.
func (a *SettingsAPI) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	settings, err := a.repo.Get(c.Request.Context(), a.defaults())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings", err)
		return
	}

	if req.DisplayName != nil {
		settings.DisplayName = *req.DisplayName
	}
	if req.Channels != nil {
		if len(*req.Channels) == 0 {
			respondError(c, http.StatusBadRequest, "at least one channel is required", nil)
			return
		}
		settings.Channels = models.StringSet(*req.Channels)
	}
	if req.FeedURLs != nil {
		settings.FeedURLs = models.StringSet(*req.FeedURLs)
	}
	if req.Keywords != nil {
		settings.Keywords = models.StringSet(*req.Keywords)
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := a.repo.Save(c.Request.Context(), settings); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save settings", err)
		return
	}

	a.logger.Info("Settings updated", zap.Strings("channels", []string(settings.Channels)))

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "settings", Op: "update"})
	c.JSON(http.StatusOK, settings)
}

func (a *SettingsAPI) defaults() models.Settings {
	return models.Settings{
		Channels: models.StringSet(a.cfg.Content.Channels),
		FeedURLs: models.StringSet(a.cfg.News.FeedURLs),
		Keywords: models.StringSet(a.cfg.News.Keywords),
	}
}
