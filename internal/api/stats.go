package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/stats"
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
	"github.com/postdeck/postdeck/pkg/telemetry"
)

// StatsAPI provides derived-statistics endpoints. Statistics are always
// recomputed from the raw tables; Redis only shields the read path from
// repeated full recomputation.
type StatsAPI struct {
	posts    *db.PostRepository
	quotes   *db.QuoteRepository
	news     *db.NewsRepository
	settings *db.SettingsRepository
	cache    *cache.Cache
	cfg      *config.Config
	logger   *zap.Logger
}

// NewStatsAPI creates a new stats API
func NewStatsAPI(repo *db.Repository, redisCache *cache.Cache, cfg *config.Config) *StatsAPI {
	return &StatsAPI{
		posts:    db.NewPostRepository(repo),
		quotes:   db.NewQuoteRepository(repo),
		news:     db.NewNewsRepository(repo),
		settings: db.NewSettingsRepository(repo),
		cache:    redisCache,
		cfg:      cfg,
		logger:   logging.WithComponent("api-stats"),
	}
}

// Get handles GET /api/v1/stats
func (a *StatsAPI) Get(c *gin.Context) {
	cached, err := a.cache.Get(cache.StatsKey)
	if err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}
	if err != cache.ErrCacheMiss && err != cache.ErrCacheDisabled {
		a.logger.Warn("Stats cache read failed", zap.Error(err))
	}

	result, err := a.compute(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute stats", err)
		return
	}

	if body, err := json.Marshal(result); err == nil {
		if err := a.cache.Set(cache.StatsKey, body, cache.StatsTTL); err != nil && err != cache.ErrCacheDisabled {
			a.logger.Warn("Failed to cache stats snapshot", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// Report handles GET /api/v1/stats/report: the current-month slice of the
// full snapshot
func (a *StatsAPI) Report(c *gin.Context) {
	result, err := a.compute(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute report", err)
		return
	}
	c.JSON(http.StatusOK, result.MonthlyReport)
}

func (a *StatsAPI) compute(c *gin.Context) (*stats.Result, error) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "stats.compute")
	defer span.End()

	posts, err := a.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := a.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	decisions, err := a.news.List(ctx, "")
	if err != nil {
		return nil, err
	}
	settings, err := a.settings.Get(ctx, models.Settings{
		Channels: models.StringSet(a.cfg.Content.Channels),
		FeedURLs: models.StringSet(a.cfg.News.FeedURLs),
		Keywords: models.StringSet(a.cfg.News.Keywords),
	})
	if err != nil {
		return nil, err
	}

	return stats.Compute(posts, quotes, decisions, []string(settings.Channels), time.Now()), nil
}
