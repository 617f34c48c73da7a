package discovery

import (
	"context"
	"net/url"
	"strings"

	"github.com/lysyi3m/feed-scout/app/fetch"
)

// Conventional sitemap filenames probed at the origin.
var commonSitemapPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap-index.xml",
	"/sitemap1.xml",
	"/wp-sitemap.xml",
	"/sitemapindex.xml",
	"/sitemap/sitemap.xml",
	"/sitemaps/sitemap.xml",
}

// SitemapCandidates produces the ordered, deduplicated list of sitemap
// URLs to try for a seed. robots.txt declarations are prepended last
// so they end up at the front of the list: a declared sitemap is
// authoritative while everything else is a guess.
func SitemapCandidates(ctx context.Context, client *fetch.Client, seed *url.URL) []string {
	candidates := newOrderedSet()

	path := strings.ToLower(seed.Path)
	if strings.HasSuffix(path, ".xml") || strings.Contains(path, "sitemap") {
		candidates.Add(seed.String())
	}

	origin := Origin(seed)
	for _, p := range commonSitemapPaths {
		candidates.Add(origin + p)
	}

	declared := SitemapsFromRobots(ctx, client, seed)
	for i := len(declared) - 1; i >= 0; i-- {
		candidates.Prepend(declared[i])
	}

	return candidates.Items()
}
