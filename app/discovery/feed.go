package discovery

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MIME types a <link> tag may declare for a syndication feed.
var feedLinkTypes = map[string]bool{
	"application/rss+xml":  true,
	"application/atom+xml": true,
	"application/xml":      true,
	"text/xml":             true,
}

// Conventional feed locations, tried after explicitly declared ones.
var commonFeedPaths = []string{
	"/feed",
	"/feed.xml",
	"/rss",
	"/rss.xml",
	"/atom.xml",
	"/feeds/posts/default",
	"/blog/feed",
	"/blog/rss.xml",
	"/index.xml",
	"/feed/atom",
}

// FeedCandidates produces the ordered, deduplicated list of feed URLs
// worth fetching for a page: every feed-typed <link> href resolved
// against the base URL, followed by the conventional paths at the
// origin. Declared links come first so the richest-feed selection
// favors what the site actually advertises.
func FeedCandidates(pageHTML []byte, base *url.URL) []string {
	candidates := newOrderedSet()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(pageHTML))
	if err != nil {
		slog.Debug("Failed to parse page HTML, falling back to common paths", "base", base.String(), "error", err)
	} else {
		doc.Find("link[type]").Each(func(_ int, sel *goquery.Selection) {
			linkType, _ := sel.Attr("type")
			if !feedLinkTypes[strings.ToLower(strings.TrimSpace(linkType))] {
				return
			}

			href, ok := sel.Attr("href")
			if !ok || strings.TrimSpace(href) == "" {
				return
			}

			ref, err := url.Parse(strings.TrimSpace(href))
			if err != nil {
				slog.Debug("Skipping malformed feed link href", "href", href, "error", err)
				return
			}

			candidates.Add(base.ResolveReference(ref).String())
		})
	}

	origin := Origin(base)
	for _, path := range commonFeedPaths {
		candidates.Add(origin + path)
	}

	return candidates.Items()
}
