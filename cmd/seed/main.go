package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/db"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting Postdeck quote seeder")

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	start := time.Now().UTC()
	if cfg.Content.QuoteStartDate != "" {
		start, err = time.Parse("2006-01-02", cfg.Content.QuoteStartDate)
		if err != nil {
			logger.Fatal("Invalid quote_start_date", zap.Error(err))
		}
	}

	repo := db.NewQuoteRepository(db.NewRepository(database.DB))
	ctx := context.Background()

	// One quote per consecutive day. Re-running never duplicates a date and
	// never resets a quote the user already marked posted.
	inserted := 0
	for i, q := range seedQuotes {
		quote := &models.Quote{
			Author:        q.author,
			Text:          q.text,
			ScheduledDate: start.AddDate(0, 0, i).Format("2006-01-02"),
		}
		created, err := repo.Seed(ctx, quote)
		if err != nil {
			logger.Fatal("Failed to seed quote", zap.String("date", quote.ScheduledDate), zap.Error(err))
		}
		if created {
			inserted++
		}
	}

	logger.Info("Seeding complete",
		zap.Int("inserted", inserted),
		zap.Int("skipped", len(seedQuotes)-inserted),
		zap.String("backend", string(database.Backend)))
}
