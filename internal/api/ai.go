package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/ai"
	"github.com/postdeck/postdeck/pkg/logging"
)

// AIAPI provides content-generation endpoints. The client is nil when no
// API key is configured; requests then answer 503 instead of failing at
// startup.
type AIAPI struct {
	client *ai.Client
	logger *zap.Logger
}

// NewAIAPI creates a new AI API
func NewAIAPI(client *ai.Client) *AIAPI {
	return &AIAPI{
		client: client,
		logger: logging.WithComponent("api-ai"),
	}
}

type captionRequest struct {
	Topic   string `json:"topic"`
	Channel string `json:"channel"`
}

type imagePromptRequest struct {
	Topic string `json:"topic"`
}

// Caption handles POST /api/v1/ai/caption
func (a *AIAPI) Caption(c *gin.Context) {
	if a.client == nil {
		respondError(c, http.StatusServiceUnavailable, "AI generation is not configured", nil)
		return
	}

	var req captionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Topic == "" {
		respondError(c, http.StatusBadRequest, "topic is required", nil)
		return
	}

	caption, err := a.client.GenerateCaption(c.Request.Context(), req.Topic, req.Channel)
	if err != nil {
		respondError(c, http.StatusBadGateway, "caption generation failed", err)
		return
	}

	a.logger.Info("Caption generated", zap.String("channel", req.Channel))
	c.JSON(http.StatusOK, gin.H{"caption": caption})
}

// ImagePrompt handles POST /api/v1/ai/image-prompt
func (a *AIAPI) ImagePrompt(c *gin.Context) {
	if a.client == nil {
		respondError(c, http.StatusServiceUnavailable, "AI generation is not configured", nil)
		return
	}

	var req imagePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Topic == "" {
		respondError(c, http.StatusBadRequest, "topic is required", nil)
		return
	}

	prompt, err := a.client.GenerateImagePrompt(c.Request.Context(), req.Topic)
	if err != nil {
		respondError(c, http.StatusBadGateway, "image prompt generation failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}
