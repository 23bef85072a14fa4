package news

import (
	"strings"
)

// MatchesKeywords reports whether the article mentions any keyword in its
// title or summary, case-insensitively. An empty keyword list keeps
// everything.
func MatchesKeywords(article Article, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(article.Title + " " + article.Summary)
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(strings.ToLower(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

// Filter returns the articles matching the keyword list, preserving order
func Filter(articles []Article, keywords []string) []Article {
	kept := make([]Article, 0, len(articles))
	for _, article := range articles {
		if MatchesKeywords(article, keywords) {
			kept = append(kept, article)
		}
	}
	return kept
}
