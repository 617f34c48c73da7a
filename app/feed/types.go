package feed

import (
	"github.com/lysyi3m/feed-scout/app/analytics"
)

// Sources describe how the winning feed was located.
const (
	SourceDirect    = "direct"
	SourceDiscovery = "discovery"
)

type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
}

type Result struct {
	FeedURL         string              `json:"feedUrl"`
	FeedTitle       string              `json:"feedTitle,omitempty"`
	FeedDescription string              `json:"feedDescription,omitempty"`
	FeedsFound      []string            `json:"feedsFound"`
	Items           []Item              `json:"items"`
	TotalItems      int                 `json:"totalItems"`
	Source          string              `json:"source"`
	Keywords        []analytics.Keyword `json:"keywords"`
	Message         string              `json:"message,omitempty"`
}
