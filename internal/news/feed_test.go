package news

import (
	"testing"
)

const rssSample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>AI Weekly</title>
    <item>
      <title>New LLM benchmark released</title>
      <link>https://example.com/llm-benchmark</link>
      <description>A new benchmark for large language models.</description>
      <pubDate>Mon, 09 Mar 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Gardening tips for spring</title>
      <link>https://example.com/gardening</link>
      <description>How to prepare your garden.</description>
    </item>
    <item>
      <title>No link item</title>
      <description>Should be skipped.</description>
    </item>
  </channel>
</rss>`

const atomSample = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Research Feed</title>
  <entry>
    <title>Machine learning in production</title>
    <link rel="alternate" href="https://example.org/ml-prod"/>
    <summary>Notes on deploying ML systems.</summary>
    <published>2026-03-08T12:00:00Z</published>
  </entry>
  <entry>
    <title>Updated only entry</title>
    <link href="https://example.org/updated-only"/>
    <updated>2026-03-09T09:00:00Z</updated>
  </entry>
</feed>`

func TestParseFeed_RSS(t *testing.T) {
	articles, err := ParseFeed([]byte(rssSample))
	if err != nil {
		t.Fatalf("ParseFeed() error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles (link-less item skipped), got %d", len(articles))
	}
	first := articles[0]
	if first.Title != "New LLM benchmark released" {
		t.Errorf("title = %q", first.Title)
	}
	if first.URL != "https://example.com/llm-benchmark" {
		t.Errorf("url = %q", first.URL)
	}
	if first.ID == "" || len(first.ID) != 32 {
		t.Errorf("article ID should be a 32-char hash, got %q", first.ID)
	}
	if first.ID != ArticleID(first.URL) {
		t.Error("article ID must be stable across fetches")
	}
}

func TestParseFeed_Atom(t *testing.T) {
	articles, err := ParseFeed([]byte(atomSample))
	if err != nil {
		t.Fatalf("ParseFeed() error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].URL != "https://example.org/ml-prod" {
		t.Errorf("url = %q", articles[0].URL)
	}
	if articles[1].Published != "2026-03-09T09:00:00Z" {
		t.Errorf("published should fall back to updated, got %q", articles[1].Published)
	}
}

func TestParseFeed_Garbage(t *testing.T) {
	if _, err := ParseFeed([]byte("not xml at all")); err == nil {
		t.Error("expected error for unparseable input")
	}
	if _, err := ParseFeed([]byte("<html><body>nope</body></html>")); err == nil {
		t.Error("expected error for non-feed XML")
	}
}

func TestMatchesKeywords(t *testing.T) {
	article := Article{
		Title:   "New LLM benchmark released",
		Summary: "A new benchmark for large language models.",
	}

	tests := []struct {
		name     string
		keywords []string
		expected bool
	}{
		{name: "no keywords keeps all", keywords: nil, expected: true},
		{name: "title match", keywords: []string{"llm"}, expected: true},
		{name: "summary match", keywords: []string{"language models"}, expected: true},
		{name: "case insensitive", keywords: []string{"BENCHMARK"}, expected: true},
		{name: "no match", keywords: []string{"gardening"}, expected: false},
		{name: "blank keywords ignored", keywords: []string{"  ", "llm"}, expected: true},
		{name: "only blank keywords match nothing", keywords: []string{"  "}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesKeywords(article, tt.keywords); got != tt.expected {
				t.Errorf("MatchesKeywords(%v) = %v, want %v", tt.keywords, got, tt.expected)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	articles, err := ParseFeed([]byte(rssSample))
	if err != nil {
		t.Fatalf("ParseFeed() error: %v", err)
	}

	kept := Filter(articles, []string{"llm", "machine learning"})
	if len(kept) != 1 {
		t.Fatalf("expected 1 kept article, got %d", len(kept))
	}
	if kept[0].Title != "New LLM benchmark released" {
		t.Errorf("kept wrong article: %q", kept[0].Title)
	}
}
