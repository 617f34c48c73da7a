package api

import (
	"context"
	"net/url"

	"github.com/lysyi3m/feed-scout/app/feed"
	"github.com/lysyi3m/feed-scout/app/sitemap"
)

type FeedExtractorInterface interface {
	Run(ctx context.Context, seed *url.URL) (*feed.Result, error)
}

type SitemapExtractorInterface interface {
	Run(ctx context.Context, seed *url.URL) (*sitemap.Result, error)
}

var _ FeedExtractorInterface = (*feed.Extractor)(nil)
var _ SitemapExtractorInterface = (*sitemap.Extractor)(nil)

type Handler struct {
	feedExtractor    FeedExtractorInterface
	sitemapExtractor SitemapExtractorInterface
	version          string
}

// ExtractRequest is the shared request body of both extraction
// endpoints: a seed URL, scheme optional.
type ExtractRequest struct {
	URL string `json:"url"`
}
