package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
	"github.com/postdeck/postdeck/pkg/telemetry"
)

const captionPromptTemplate = `Write a social media caption for %s about the following topic. Keep it under 150 words, no hashtags unless they add value, and match the tone of the platform.

Topic:
%s`

const imagePromptTemplate = `Write a single, detailed text-to-image prompt for a clean, modern social media card illustrating the following topic. Describe composition, style and mood in one paragraph. Output only the prompt.

Topic:
%s`

// Client wraps the Gemini API for caption and image-prompt generation
type Client struct {
	gClient *genai.Client
	model   string
	logger  *zap.Logger
}

// New creates a new AI client
func New(ctx context.Context, cfg *config.AIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini_api_key is required")
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger := logging.WithComponent("ai-client")
	logger.Info("AI client initialized", zap.String("model", cfg.Model))

	return &Client{
		gClient: gClient,
		model:   cfg.Model,
		logger:  logger,
	}, nil
}

// GenerateCaption produces a channel-appropriate caption for a topic
func (c *Client) GenerateCaption(ctx context.Context, topic, channel string) (string, error) {
	prompt := fmt.Sprintf(captionPromptTemplate, channelLabel(channel), topic)
	return c.generate(ctx, "ai.generate_caption", prompt)
}

// GenerateImagePrompt produces a text-to-image prompt for a topic
func (c *Client) GenerateImagePrompt(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(imagePromptTemplate, topic)
	return c.generate(ctx, "ai.generate_image_prompt", prompt)
}

func (c *Client) generate(ctx context.Context, spanName, prompt string) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, spanName)
	defer span.End()

	resp, err := c.gClient.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return text, nil
}

func channelLabel(channel string) string {
	switch channel {
	case "linkedin":
		return "LinkedIn"
	case "instagram_personal", "instagram_secondary":
		return "Instagram"
	default:
		return "social media"
	}
}
