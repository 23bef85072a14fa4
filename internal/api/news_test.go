package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/models"
)

func TestNewsAPI_DecideRestampsDecidedAt(t *testing.T) {
	engine, database := setupTestRouter(t)
	repo := db.NewNewsRepository(db.NewRepository(database.DB))
	ctx := context.Background()

	// An article queued by the ingestor a month ago
	queuedAt := time.Now().UTC().AddDate(0, -1, 0)
	seed := &models.NewsDecision{
		ArticleID: "article-1",
		Title:     "Old headline",
		Status:    models.NewsQueued,
		DecidedAt: queuedAt,
		UpdatedAt: queuedAt,
	}
	if err := repo.Save(ctx, seed); err != nil {
		t.Fatalf("seed decision: %v", err)
	}

	before := time.Now().UTC().Add(-time.Second)
	rec := doJSON(t, engine, http.MethodPut, "/api/v1/news/article-1", map[string]interface{}{
		"status": models.NewsPosted,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("decide status = %d, body %s", rec.Code, rec.Body.String())
	}

	var decision models.NewsDecision
	if err := json.Unmarshal(rec.Body.Bytes(), &decision); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decision.Status != models.NewsPosted {
		t.Errorf("status = %q, want %q", decision.Status, models.NewsPosted)
	}
	// The status flip counts as a fresh decision
	if !decision.DecidedAt.After(before) {
		t.Errorf("DecidedAt = %v, want restamped after %v", decision.DecidedAt, before)
	}

	// A same-status PUT must not restamp
	rec = doJSON(t, engine, http.MethodPut, "/api/v1/news/article-1", map[string]interface{}{
		"status": models.NewsPosted,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat decide status = %d, body %s", rec.Code, rec.Body.String())
	}
	var repeat models.NewsDecision
	if err := json.Unmarshal(rec.Body.Bytes(), &repeat); err != nil {
		t.Fatalf("decode repeat decision: %v", err)
	}
	if !repeat.DecidedAt.Equal(decision.DecidedAt) {
		t.Errorf("DecidedAt changed on same-status update: %v -> %v", decision.DecidedAt, repeat.DecidedAt)
	}
}

func TestNewsAPI_DecideCreatesRecord(t *testing.T) {
	engine, _ := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodPut, "/api/v1/news/fresh-article", map[string]interface{}{
		"status":  models.NewsDeclined,
		"title":   "Seen elsewhere",
		"url":     "https://example.com/a",
		"summary": "An article the ingestor never fetched",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("decide status = %d, body %s", rec.Code, rec.Body.String())
	}

	var decision models.NewsDecision
	if err := json.Unmarshal(rec.Body.Bytes(), &decision); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decision.ArticleID != "fresh-article" || decision.Status != models.NewsDeclined {
		t.Errorf("decision = %+v, want declined fresh-article", decision)
	}

	rec = doJSON(t, engine, http.MethodPut, "/api/v1/news/fresh-article", map[string]interface{}{
		"status": "archived",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", rec.Code)
	}
}
