package sitemap

import (
	"strings"

	"github.com/lysyi3m/feed-scout/app/xmlscan"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run extracts URL entries and child-sitemap references from one
// sitemap document. Index detection and <url> extraction both always
// run: a document can be an index and still carry direct entries.
func (p *Parser) Run(data []byte) *Document {
	text := string(data)

	doc := &Document{}

	if strings.Contains(strings.ToLower(text), "<sitemapindex") || xmlscan.HasTag(text, "sitemap") {
		doc.IsIndex = true
		for _, block := range xmlscan.Blocks(text, "sitemap") {
			if loc := xmlscan.Text(block, "loc"); loc != "" {
				doc.ChildSitemaps = append(doc.ChildSitemaps, loc)
			}
		}
	}

	for _, block := range xmlscan.Blocks(text, "url") {
		loc := xmlscan.Text(block, "loc")
		if loc == "" {
			continue
		}

		doc.Urls = append(doc.Urls, UrlEntry{
			Loc:        loc,
			LastMod:    xmlscan.Text(block, "lastmod"),
			ChangeFreq: xmlscan.Text(block, "changefreq"),
			Priority:   xmlscan.Text(block, "priority"),
		})
	}

	return doc
}

// LooksLikeSitemap filters HTML error pages served with a 200 status:
// a plausible sitemap body starts with an XML declaration, a urlset or
// a sitemapindex.
func LooksLikeSitemap(data []byte) bool {
	body := strings.TrimSpace(string(data))
	return strings.HasPrefix(body, "<?xml") ||
		strings.HasPrefix(body, "<urlset") ||
		strings.HasPrefix(body, "<sitemapindex")
}
