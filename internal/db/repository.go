package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/postdeck/postdeck/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PostRepository provides content-post database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.ContentPost, error) {
	var post models.ContentPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves all non-deleted posts, most recently touched first
func (r *PostRepository) List(ctx context.Context) ([]models.ContentPost, error) {
	var posts []models.ContentPost
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.ContentPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update updates a post
func (r *PostRepository) Update(ctx context.Context, post *models.ContentPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ContentPost{}).Error
}

// QuoteRepository provides quote database operations
type QuoteRepository struct {
	*Repository
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(repo *Repository) *QuoteRepository {
	return &QuoteRepository{Repository: repo}
}

// GetByID retrieves a quote by ID
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	var quote models.Quote
	if err := r.db.WithContext(ctx).First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

// GetByDate retrieves the quote scheduled for a calendar date
func (r *QuoteRepository) GetByDate(ctx context.Context, date string) (*models.Quote, error) {
	var quote models.Quote
	if err := r.db.WithContext(ctx).Where("scheduled_date = ?", date).First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

// List retrieves all quotes in schedule order
func (r *QuoteRepository) List(ctx context.Context) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.db.WithContext(ctx).Order("scheduled_date ASC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// Update updates a quote
func (r *QuoteRepository) Update(ctx context.Context, quote *models.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

// Seed inserts a quote unless one already occupies its scheduled date.
// Seeding is idempotent; user edits to is_posted/posted_at survive re-runs.
func (r *QuoteRepository) Seed(ctx context.Context, quote *models.Quote) (bool, error) {
	existing, err := r.GetByDate(ctx, quote.ScheduledDate)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return false, err
	}
	return true, nil
}

// NewsRepository provides news-decision database operations
type NewsRepository struct {
	*Repository
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(repo *Repository) *NewsRepository {
	return &NewsRepository{Repository: repo}
}

// GetByArticleID retrieves a decision by article ID
func (r *NewsRepository) GetByArticleID(ctx context.Context, articleID string) (*models.NewsDecision, error) {
	var decision models.NewsDecision
	if err := r.db.WithContext(ctx).Where("article_id = ?", articleID).First(&decision).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &decision, nil
}

// List retrieves decisions, optionally filtered by status, newest first
func (r *NewsRepository) List(ctx context.Context, status string) ([]models.NewsDecision, error) {
	q := r.db.WithContext(ctx).Order("updated_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var decisions []models.NewsDecision
	if err := q.Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// Save creates or updates a decision
func (r *NewsRepository) Save(ctx context.Context, decision *models.NewsDecision) error {
	return r.db.WithContext(ctx).Save(decision).Error
}

// Delete removes a decision entirely (not just its status)
func (r *NewsRepository) Delete(ctx context.Context, articleID string) error {
	return r.db.WithContext(ctx).Where("article_id = ?", articleID).Delete(&models.NewsDecision{}).Error
}

// IdeaRepository provides idea database operations
type IdeaRepository struct {
	*Repository
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(repo *Repository) *IdeaRepository {
	return &IdeaRepository{Repository: repo}
}

// GetByID retrieves an idea by ID
func (r *IdeaRepository) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	var idea models.Idea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &idea, nil
}

// List retrieves all ideas, newest first
func (r *IdeaRepository) List(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// Create creates a new idea
func (r *IdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

// Delete removes an idea
func (r *IdeaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Idea{}).Error
}

// SettingsRepository provides settings database operations
type SettingsRepository struct {
	*Repository
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(repo *Repository) *SettingsRepository {
	return &SettingsRepository{Repository: repo}
}

// Get retrieves the single settings row, creating defaults on first access
func (r *SettingsRepository) Get(ctx context.Context, defaults models.Settings) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.WithContext(ctx).Where("id = ?", models.SettingsID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults.ID = models.SettingsID
	defaults.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Create(&defaults).Error; err != nil {
		return nil, err
	}
	return &defaults, nil
}

// Save updates the settings row
func (r *SettingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
