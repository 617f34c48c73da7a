package sitemap

import (
	"github.com/lysyi3m/feed-scout/app/analytics"
)

type UrlEntry struct {
	Loc        string `json:"loc"`
	LastMod    string `json:"lastmod"`
	ChangeFreq string `json:"changefreq"`
	Priority   string `json:"priority"`
}

// Document is one parsed sitemap: its own URL entries plus, when the
// document is an index, the child sitemaps it points to. The two are
// not mutually exclusive.
type Document struct {
	IsIndex       bool
	ChildSitemaps []string
	Urls          []UrlEntry
}

type Result struct {
	SitemapURL         string               `json:"sitemapUrl"`
	DiscoveredSitemaps []string             `json:"discoveredSitemaps"`
	Urls               []UrlEntry           `json:"urls"`
	TotalUrls          int                  `json:"totalUrls"`
	Categories         []analytics.Category `json:"categories"`
	Keywords           []analytics.Keyword  `json:"keywords"`
	Message            string               `json:"message,omitempty"`
}
