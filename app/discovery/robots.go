package discovery

import (
	"bufio"
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/lysyi3m/feed-scout/app/fetch"
)

// SitemapsFromRobots fetches robots.txt at the seed's origin and
// returns every Sitemap: directive value in file order. Any failure is
// treated as "no directives": robots.txt is an optional hint, never a
// reason to abort discovery.
func SitemapsFromRobots(ctx context.Context, client *fetch.Client, seed *url.URL) []string {
	robotsURL := Origin(seed) + "/robots.txt"

	data, err := client.Fetch(ctx, robotsURL, fetch.AcceptText, fetch.RobotsTimeout)
	if err != nil {
		slog.Debug("No robots.txt directives available", "url", robotsURL, "error", err)
		return nil
	}

	return parseSitemapDirectives(string(data))
}

func parseSitemapDirectives(content string) []string {
	var sitemaps []string

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		directive := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		if directive == "sitemap" && value != "" {
			sitemaps = append(sitemaps, value)
		}
	}

	return sitemaps
}
