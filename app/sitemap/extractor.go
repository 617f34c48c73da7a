package sitemap

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/lysyi3m/feed-scout/app/analytics"
	"github.com/lysyi3m/feed-scout/app/discovery"
	"github.com/lysyi3m/feed-scout/app/fetch"
)

const (
	// MaxUrls caps the aggregate URL count across a sitemap and its
	// expanded children.
	MaxUrls = 5000

	// MaxChildSitemaps bounds index expansion: at most this many child
	// sitemaps are fetched, all in parallel.
	MaxChildSitemaps = 20
)

type Extractor struct {
	client *fetch.Client
	parser *Parser
}

func NewExtractor(client *fetch.Client) *Extractor {
	return &Extractor{
		client: client,
		parser: NewParser(),
	}
}

// Run drives the sitemap pipeline for a seed URL. Candidates are tried
// in priority order and the first one producing at least one URL wins;
// sitemaps are assumed canonical once found, so later candidates are
// never consulted. Child sitemaps of an index document are expanded
// one level, concurrently.
func (e *Extractor) Run(ctx context.Context, seed *url.URL) (*Result, error) {
	candidates := discovery.SitemapCandidates(ctx, e.client, seed)

	result := &Result{
		DiscoveredSitemaps: []string{},
		Urls:               []UrlEntry{},
	}

	for _, candidate := range candidates {
		data, err := e.client.Fetch(ctx, candidate, fetch.AcceptXML, fetch.SitemapTimeout)
		if err != nil {
			slog.Debug("Sitemap candidate skipped", "url", candidate, "error", err)
			continue
		}

		if !LooksLikeSitemap(data) {
			slog.Debug("Sitemap candidate rejected by content check", "url", candidate)
			continue
		}

		doc := e.parser.Run(data)
		result.DiscoveredSitemaps = append(result.DiscoveredSitemaps, candidate)

		urls := doc.Urls
		if len(urls) > MaxUrls {
			urls = urls[:MaxUrls]
		}
		result.Urls = append(result.Urls, urls...)

		if doc.IsIndex && len(doc.ChildSitemaps) > 0 {
			e.expandIndex(ctx, doc.ChildSitemaps, result)
		}

		if len(result.Urls) > 0 {
			result.SitemapURL = candidate
			break
		}
	}

	result.Urls = dedupeByLoc(result.Urls)
	if len(result.Urls) > MaxUrls {
		result.Urls = result.Urls[:MaxUrls]
	}
	result.TotalUrls = len(result.Urls)

	locs := make([]string, 0, len(result.Urls))
	for _, entry := range result.Urls {
		locs = append(locs, entry.Loc)
	}
	result.Categories = analytics.Categories(locs)
	result.Keywords = analytics.Phrases(locs)

	if result.TotalUrls == 0 {
		if len(result.DiscoveredSitemaps) > 0 {
			result.Message = "Sitemaps were found but contained no URL entries"
		} else {
			result.Message = "No sitemap found for this site"
		}
	}

	slog.Info("Sitemap extraction finished",
		"seed", seed.String(),
		"candidates", len(candidates),
		"sitemaps", len(result.DiscoveredSitemaps),
		"urls", result.TotalUrls)

	return result, nil
}

// expandIndex fetches up to MaxChildSitemaps children in parallel.
// Each goroutine writes into its own slot; the caller merges in index
// order after the batch completes, so no lock is needed. A failed
// child contributes nothing and never aborts its siblings.
func (e *Extractor) expandIndex(ctx context.Context, children []string, result *Result) {
	if len(children) > MaxChildSitemaps {
		children = children[:MaxChildSitemaps]
	}

	docs := make([]*Document, len(children))

	var wg sync.WaitGroup
	for i, childURL := range children {
		wg.Add(1)
		go func(i int, childURL string) {
			defer wg.Done()

			data, err := e.client.Fetch(ctx, childURL, fetch.AcceptXML, fetch.SitemapTimeout)
			if err != nil {
				slog.Debug("Child sitemap skipped", "url", childURL, "error", err)
				return
			}
			if !LooksLikeSitemap(data) {
				slog.Debug("Child sitemap rejected by content check", "url", childURL)
				return
			}

			docs[i] = e.parser.Run(data)
		}(i, childURL)
	}
	wg.Wait()

	for i, doc := range docs {
		if doc == nil {
			continue
		}

		result.DiscoveredSitemaps = append(result.DiscoveredSitemaps, children[i])

		for _, entry := range doc.Urls {
			if len(result.Urls) >= MaxUrls {
				return
			}
			result.Urls = append(result.Urls, entry)
		}
	}
}

// dedupeByLoc keeps the first occurrence of every loc.
func dedupeByLoc(urls []UrlEntry) []UrlEntry {
	seen := make(map[string]bool, len(urls))
	out := make([]UrlEntry, 0, len(urls))

	for _, entry := range urls {
		if seen[entry.Loc] {
			continue
		}
		seen[entry.Loc] = true
		out = append(out, entry)
	}

	return out
}
