package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/news"
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
)

// Ingestor pulls configured feeds into the triage queue. New articles become
// queued decisions; articles the user already triaged are never touched.
type Ingestor struct {
	cfg     *config.Config
	db      *db.DB
	cache   *cache.Cache
	fetcher *news.Fetcher
	logger  *zap.Logger
}

// NewIngestor creates a new feed ingestor
func NewIngestor(cfg *config.Config, database *db.DB, redisCache *cache.Cache) *Ingestor {
	return &Ingestor{
		cfg:     cfg,
		db:      database,
		cache:   redisCache,
		fetcher: news.NewFetcher(),
		logger:  logging.WithComponent("ingestor"),
	}
}

// RunOnce fetches every configured feed once and returns how many articles
// were newly queued. Feed failures are logged and skipped; one broken feed
// must not starve the others.
func (i *Ingestor) RunOnce(ctx context.Context) (int, error) {
	repo := db.NewRepository(i.db.DB)
	settingsRepo := db.NewSettingsRepository(repo)
	newsRepo := db.NewNewsRepository(repo)

	settings, err := settingsRepo.Get(ctx, i.defaults())
	if err != nil {
		return 0, err
	}

	feedURLs := []string(settings.FeedURLs)
	keywords := []string(settings.Keywords)

	queued := 0
	for _, feedURL := range feedURLs {
		articles, err := i.fetcher.Fetch(ctx, feedURL)
		if err != nil {
			i.logger.Warn("Failed to fetch feed", zap.String("url", feedURL), zap.Error(err))
			continue
		}

		for _, article := range news.Filter(articles, keywords) {
			existing, err := newsRepo.GetByArticleID(ctx, article.ID)
			if err != nil {
				return queued, err
			}
			if existing != nil {
				continue
			}

			now := time.Now().UTC()
			decision := &models.NewsDecision{
				ArticleID: article.ID,
				Title:     article.Title,
				URL:       article.URL,
				Summary:   article.Summary,
				Status:    models.NewsQueued,
				DecidedAt: now,
				UpdatedAt: now,
			}
			if err := newsRepo.Save(ctx, decision); err != nil {
				return queued, err
			}
			queued++
		}
	}

	if queued > 0 {
		i.cache.Delete(cache.StatsKey)
		i.cache.PublishChange(ctx, cache.ChangeEvent{Entity: "news", Op: "create"})
		i.logger.Info("Queued new articles", zap.Int("count", queued))
	}

	return queued, nil
}

// Run polls the feeds on the configured interval until ctx is done.
// A settings change published by another process triggers an immediate run,
// so an edited feed or keyword list takes effect without waiting out the
// interval.
func (i *Ingestor) Run(ctx context.Context) error {
	interval := time.Duration(i.cfg.News.PollInterval) * time.Second
	if interval <= 0 {
		i.logger.Info("News poller disabled")
		return nil
	}

	i.logger.Info("Starting news poller", zap.Duration("interval", interval))

	kick := make(chan struct{}, 1)
	i.cache.SubscribeChanges(ctx, func(event cache.ChangeEvent) {
		if !triggersRefresh(event) {
			return
		}
		select {
		case kick <- struct{}{}:
		default:
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case <-kick:
			i.logger.Info("Settings changed, refreshing feeds")
		}
		if _, err := i.RunOnce(ctx); err != nil {
			i.logger.Error("Ingest run failed", zap.Error(err))
		}
	}
}

// triggersRefresh reports whether a change event invalidates the poller's
// view of its feed and keyword configuration
func triggersRefresh(event cache.ChangeEvent) bool {
	return event.Entity == "settings"
}

func (i *Ingestor) defaults() models.Settings {
	return models.Settings{
		Channels: models.StringSet(i.cfg.Content.Channels),
		FeedURLs: models.StringSet(i.cfg.News.FeedURLs),
		Keywords: models.StringSet(i.cfg.News.Keywords),
	}
}
