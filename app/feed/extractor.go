package feed

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/feed-scout/app/analytics"
	"github.com/lysyi3m/feed-scout/app/discovery"
	"github.com/lysyi3m/feed-scout/app/fetch"
)

type Extractor struct {
	client     *fetch.Client
	parser     *Parser
	metaParser *gofeed.Parser
}

func NewExtractor(client *fetch.Client) *Extractor {
	return &Extractor{
		client:     client,
		parser:     NewParser(),
		metaParser: gofeed.NewParser(),
	}
}

// Run drives the feed pipeline for a seed URL. Only the seed fetch can
// fail the request; every candidate-level failure is absorbed. When the
// seed body is itself a feed document it is parsed directly and
// discovery is skipped entirely.
func (e *Extractor) Run(ctx context.Context, seed *url.URL) (*Result, error) {
	page, err := e.client.Fetch(ctx, seed.String(), fetch.AcceptHTML, fetch.PageTimeout)
	if err != nil {
		return nil, err
	}

	if isFeedDocument(page) {
		return e.direct(seed.String(), page), nil
	}

	return e.discover(ctx, seed, page), nil
}

func (e *Extractor) direct(seedURL string, data []byte) *Result {
	items := e.parser.Run(data)
	if items == nil {
		items = []Item{}
	}

	result := &Result{
		FeedURL:    seedURL,
		FeedsFound: []string{seedURL},
		Items:      items,
		TotalItems: len(items),
		Source:     SourceDirect,
		Keywords:   analytics.TitleKeywords(itemTitles(items)),
	}

	if len(items) == 0 {
		result.Message = "The URL is a feed but no items could be extracted"
	}

	e.enrich(result, data)

	slog.Debug("Seed URL is a feed document, discovery skipped", "url", seedURL, "items", len(items))

	return result
}

func (e *Extractor) discover(ctx context.Context, seed *url.URL, page []byte) *Result {
	candidates := discovery.FeedCandidates(page, seed)

	feedsFound := []string{}
	var bestURL string
	var bestItems []Item
	var bestData []byte

	// Every candidate is evaluated: a heuristic guess found late may
	// carry more items than a declared feed found early, and the
	// richest feed wins.
	for _, candidate := range candidates {
		data, err := e.client.Fetch(ctx, candidate, fetch.AcceptFeed, fetch.FeedTimeout)
		if err != nil {
			slog.Debug("Feed candidate skipped", "url", candidate, "error", err)
			continue
		}

		if !looksLikeFeed(data) {
			slog.Debug("Feed candidate rejected by content check", "url", candidate)
			continue
		}

		feedsFound = append(feedsFound, candidate)

		items := e.parser.Run(data)
		if len(items) > len(bestItems) {
			bestURL = candidate
			bestItems = items
			bestData = data
		}
	}

	result := &Result{
		FeedURL:    bestURL,
		FeedsFound: feedsFound,
		Items:      bestItems,
		TotalItems: len(bestItems),
		Source:     SourceDiscovery,
		Keywords:   analytics.TitleKeywords(itemTitles(bestItems)),
	}
	if result.Items == nil {
		result.Items = []Item{}
	}

	switch {
	case bestURL != "":
		e.enrich(result, bestData)
	case len(feedsFound) > 0:
		result.Message = "Feeds were found but no items could be extracted from them"
	default:
		result.Message = "No feeds found for this site"
	}

	slog.Info("Feed extraction finished",
		"seed", seed.String(),
		"candidates", len(candidates),
		"feeds_found", len(feedsFound),
		"items", len(bestItems))

	return result
}

// enrich runs the strict parser over the winning document for
// feed-level metadata. Failure is ignored: the tolerant scanner has
// already produced the items.
func (e *Extractor) enrich(result *Result, data []byte) {
	parsed, err := e.metaParser.Parse(bytes.NewReader(data))
	if err != nil {
		slog.Debug("Feed metadata enrichment skipped", "url", result.FeedURL, "error", err)
		return
	}

	result.FeedTitle = parsed.Title
	result.FeedDescription = parsed.Description
}

// isFeedDocument reports whether a body is itself an XML feed rather
// than an HTML page to run discovery on.
func isFeedDocument(data []byte) bool {
	body := strings.TrimSpace(string(data))
	return strings.HasPrefix(body, "<?xml") ||
		strings.HasPrefix(body, "<rss") ||
		strings.HasPrefix(body, "<feed")
}

// looksLikeFeed filters HTML error pages served with a 200 status.
func looksLikeFeed(data []byte) bool {
	body := strings.ToLower(string(data))
	return strings.Contains(body, "<rss") ||
		strings.Contains(body, "<feed") ||
		strings.Contains(body, "<channel>")
}

func itemTitles(items []Item) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}
