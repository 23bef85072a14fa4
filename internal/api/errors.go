package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/cache"
	"github.com/postdeck/postdeck/pkg/logging"
)

// respondError sends a JSON error body and logs the underlying cause
func respondError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logging.WithComponent("api").Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("message", message),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}

// respondNotFound sends a 404 for a missing record
func respondNotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

// invalidateStats drops the cached stats snapshot and announces the change.
// Both are best-effort; the snapshot TTL bounds staleness either way.
func invalidateStats(ctx context.Context, redisCache *cache.Cache, event cache.ChangeEvent) {
	redisCache.Delete(cache.StatsKey)
	redisCache.PublishChange(ctx, event)
}

// validDate reports whether s is a well-formed YYYY-MM-DD calendar date
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
