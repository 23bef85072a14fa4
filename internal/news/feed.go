package news

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/postdeck/postdeck/pkg/logging"
	"github.com/postdeck/postdeck/pkg/telemetry"
)

// Article is a normalized feed entry, candidate for the triage queue
type Article struct {
	ID        string
	Title     string
	URL       string
	Summary   string
	Published string
}

// rss is the RSS 2.0 feed envelope
type rss struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Title string    `xml:"title"`
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// atom is the Atom feed envelope
type atom struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Summary   string     `xml:"summary"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
	ID        string     `xml:"id"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// Fetcher fetches and parses RSS/Atom feeds
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a new feed fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logging.WithComponent("news-fetcher"),
	}
}

// Fetch downloads and parses one feed URL into normalized articles
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]Article, error) {
	ctx, span := telemetry.StartSpan(ctx, "news.fetch_feed")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Postdeck/0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	articles, err := ParseFeed(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}

	f.logger.Debug("Fetched feed", zap.String("url", feedURL), zap.Int("articles", len(articles)))

	return articles, nil
}

// ParseFeed parses feed bytes, trying RSS 2.0 first, then Atom
func ParseFeed(data []byte) ([]Article, error) {
	var r rss
	if err := xml.Unmarshal(data, &r); err == nil && len(r.Channel.Items) > 0 {
		articles := make([]Article, 0, len(r.Channel.Items))
		for _, item := range r.Channel.Items {
			url := strings.TrimSpace(item.Link)
			if url == "" {
				url = strings.TrimSpace(item.GUID)
			}
			if url == "" {
				continue
			}
			articles = append(articles, Article{
				ID:        ArticleID(url),
				Title:     strings.TrimSpace(item.Title),
				URL:       url,
				Summary:   strings.TrimSpace(item.Description),
				Published: item.PubDate,
			})
		}
		return articles, nil
	}

	var a atom
	if err := xml.Unmarshal(data, &a); err == nil && len(a.Entries) > 0 {
		articles := make([]Article, 0, len(a.Entries))
		for _, entry := range a.Entries {
			url := atomEntryURL(entry)
			if url == "" {
				continue
			}
			published := entry.Published
			if published == "" {
				published = entry.Updated
			}
			articles = append(articles, Article{
				ID:        ArticleID(url),
				Title:     strings.TrimSpace(entry.Title),
				URL:       url,
				Summary:   strings.TrimSpace(entry.Summary),
				Published: published,
			})
		}
		return articles, nil
	}

	return nil, fmt.Errorf("not a recognizable RSS or Atom document")
}

func atomEntryURL(entry atomEntry) string {
	for _, link := range entry.Links {
		if link.Rel == "" || link.Rel == "alternate" {
			return strings.TrimSpace(link.Href)
		}
	}
	if len(entry.Links) > 0 {
		return strings.TrimSpace(entry.Links[0].Href)
	}
	return strings.TrimSpace(entry.ID)
}

// ArticleID derives a stable identifier from an article URL, so re-fetching
// a feed never duplicates triage records
func ArticleID(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}
