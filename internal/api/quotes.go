package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/pkg/logging"
)

// QuotesAPI provides daily-quote endpoints
type QuotesAPI struct {
	repo   *db.QuoteRepository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewQuotesAPI creates a new quotes API
func NewQuotesAPI(repo *db.Repository, redisCache *cache.Cache) *QuotesAPI {
	return &QuotesAPI{
		repo:   db.NewQuoteRepository(repo),
		cache:  redisCache,
		logger: logging.WithComponent("api-quotes"),
	}
}

// List handles GET /api/v1/quotes
func (a *QuotesAPI) List(c *gin.Context) {
	quotes, err := a.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list quotes", err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// Today handles GET /api/v1/quotes/today
func (a *QuotesAPI) Today(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	quote, err := a.repo.GetByDate(c.Request.Context(), today)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load quote", err)
		return
	}
	if quote == nil {
		respondNotFound(c, "quote for today")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Toggle handles POST /api/v1/quotes/:id/toggle
func (a *QuotesAPI) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid quote id", err)
		return
	}

	quote, err := a.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load quote", err)
		return
	}
	if quote == nil {
		respondNotFound(c, "quote")
		return
	}

	quote.TogglePosted(time.Now().UTC())

	if err := a.repo.Update(c.Request.Context(), quote); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update quote", err)
		return
	}

	invalidateStats(c.Request.Context(), a.cache, cache.ChangeEvent{Entity: "quotes", ID: c.Param("id"), Op: "update"})
	c.JSON(http.StatusOK, quote)
}
